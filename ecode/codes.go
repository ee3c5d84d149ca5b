package ecode

import "net/http"

const (
	OK = 0

	NoLogin      = -101
	Unauthorized = -103

	RequestErr       = -400
	ParamErr         = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409

	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504
)

var texts = map[int]string{
	OK:                 "ok",
	NoLogin:            "Account not logged in",
	Unauthorized:       "Not authorized",
	RequestErr:         "Invalid request",
	ParamErr:           "Invalid parameters",
	AccessDenied:       "Access denied",
	NothingFound:       "Resource not found",
	MethodNotAllowed:   "Method not allowed",
	Conflict:           "Resource conflict",
	ServerErr:          "Server error",
	ServiceUnavailable: "Service unavailable",
	Deadline:           "Deadline exceeded",
}

var statuses = map[int]int{
	OK:                 http.StatusOK,
	NoLogin:            http.StatusUnauthorized,
	Unauthorized:       http.StatusUnauthorized,
	RequestErr:         http.StatusBadRequest,
	ParamErr:           http.StatusBadRequest,
	AccessDenied:       http.StatusForbidden,
	NothingFound:       http.StatusNotFound,
	MethodNotAllowed:   http.StatusMethodNotAllowed,
	Conflict:           http.StatusConflict,
	ServerErr:          http.StatusInternalServerError,
	ServiceUnavailable: http.StatusServiceUnavailable,
	Deadline:           http.StatusGatewayTimeout,
}

// Text returns the default message of a code.
func Text(code int) string {
	if t, ok := texts[code]; ok {
		return t
	}
	return texts[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
