// Package logger provides structured logging for httpcall using zerolog.
//
// The core call path never logs; this package exists for the logging
// middleware and for applications embedding the client stack.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("my-client")
//	log.Info("request completed", logger.Fields("status", 200))
package logger
