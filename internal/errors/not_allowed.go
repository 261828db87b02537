package errors

import "net/http"

var ErrNotAllowed = &Exception{
	Message:    "operation not allowed for this user",
	StatusCode: http.StatusForbidden,
}
