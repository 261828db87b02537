package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "invalid task status",
	StatusCode: http.StatusBadRequest,
}
