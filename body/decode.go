package body

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DecodeBytes returns the materialized buffer unchanged. It never fails and
// exists so every supported format has a decoder of the same shape.
func DecodeBytes(buf []byte) []byte {
	return buf
}

// DecodeText interprets buf as UTF-8 text. It fails with a *DecodeError
// reporting the offset of the first invalid byte sequence.
func DecodeText(buf []byte) (string, error) {
	for i := 0; i < len(buf); {
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size == 1 {
			return "", &DecodeError{
				Format:  "text",
				Offset:  int64(i),
				Message: "invalid UTF-8 byte sequence",
			}
		}
		i += size
	}
	return string(buf), nil
}

// DecodeJSON unmarshals buf into v. Parser position is carried on the
// returned *DecodeError when the standard library reports one.
func DecodeJSON(buf []byte, v any) error {
	err := json.Unmarshal(buf, v)
	if err == nil {
		return nil
	}
	offset := int64(-1)
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	}
	return &DecodeError{
		Format:  "json",
		Offset:  offset,
		Message: err.Error(),
		Err:     err,
	}
}

// FormField is one key/value pair of a URL-encoded form payload.
type FormField struct {
	Key   string
	Value string
}

// FormData is an ordered list of form fields. Repeated keys are preserved
// in the order they appear in the payload.
type FormData []FormField

// Get returns the first value for key.
func (d FormData) Get(key string) (string, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns all values for key in payload order.
func (d FormData) Values(key string) []string {
	var values []string
	for _, f := range d {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

// Encode serializes the form data back to URL-encoded form, preserving
// field order.
func (d FormData) Encode() string {
	var sb strings.Builder
	for i, f := range d {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.Value))
	}
	return sb.String()
}

// DecodeForm interprets buf as an application/x-www-form-urlencoded payload.
// Unlike net/url.ParseQuery it preserves field order and duplicate keys.
// Malformed percent-encoding fails with a *DecodeError carrying the byte
// offset of the offending field.
func DecodeForm(buf []byte) (FormData, error) {
	var data FormData
	s := string(buf)
	offset := int64(0)
	for len(s) > 0 {
		field := s
		if i := strings.IndexByte(s, '&'); i >= 0 {
			field, s = s[:i], s[i+1:]
		} else {
			s = ""
		}
		fieldLen := int64(len(field)) + 1
		if field == "" {
			offset += fieldLen
			continue
		}
		rawKey, rawValue := field, ""
		if i := strings.IndexByte(field, '='); i >= 0 {
			rawKey, rawValue = field[:i], field[i+1:]
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, &DecodeError{
				Format:  "form",
				Offset:  offset,
				Message: err.Error(),
				Err:     err,
			}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, &DecodeError{
				Format:  "form",
				Offset:  offset,
				Message: err.Error(),
				Err:     err,
			}
		}
		data = append(data, FormField{Key: key, Value: value})
		offset += fieldLen
	}
	return data, nil
}
