package models

import "fmt"

// Result is the outcome reported for one invocation. It mirrors an HTTP-style
// status so that the non-fatal rejection path (unsupported file type) is
// distinguishable from success in the execution logs.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// OK builds a success result.
func OK(format string, args ...any) *Result {
	return &Result{StatusCode: 200, Body: fmt.Sprintf(format, args...)}
}

// Rejected builds a 400-equivalent result for inputs this pipeline refuses to
// process.
func Rejected(format string, args ...any) *Result {
	return &Result{StatusCode: 400, Body: fmt.Sprintf(format, args...)}
}
