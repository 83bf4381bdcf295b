package model

// ErrorResponse is the body of every failed API call.
// Code is a stable machine readable reason, e.g. "busy", "not_connected" or "insufficient_balance".
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
