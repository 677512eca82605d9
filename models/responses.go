package models

import "net/http"

// ErrorResponse is the uniform error body written to clients.
//
// It also implements error, so handlers can return it to choose the
// response status themselves.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// Status returns Code when it is a usable HTTP status (>= 200), 500 otherwise.
func (e *ErrorResponse) Status() int {
	if e.Code >= http.StatusOK && e.Code <= 599 {
		return e.Code
	}
	return http.StatusInternalServerError
}

// Result lets a handler choose the status code of a successful response.
// Handlers returning any other value respond with 200.
type Result struct {
	Status int
	Body   any
}
