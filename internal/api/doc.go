// Package api translates HTTP requests into calls on the account and contact
// services and shapes their results into the response envelope.
//
// Request bodies are decoded and validated here, so a request that reaches a
// service already satisfies the field rules. Errors are mapped to status codes
// and client-facing messages in errors.go; their details are only logged.
package api
