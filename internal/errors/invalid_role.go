package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "invalid user role",
	StatusCode: http.StatusBadRequest,
}
