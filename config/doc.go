// Package config loads the httpcall client stack configuration from YAML
// files and environment variables.
//
// Loading order: the YAML file is the base, a .env file (godotenv) fills
// the process environment, and environment variables override file values
// through viper. The result is validated with struct tags
// (go-playground/validator).
//
// # Example config.yml
//
//	name: billing-api
//	client:
//	  timeout: 10s
//	  headers:
//	    accept: application/json
//	auth:
//	  type: bearer
//	  token: ${BILLING_TOKEN}
//	logging:
//	  level: info
//	  format: json
package config
