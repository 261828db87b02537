package errors

import "net/http"

var ErrFullNameRequired = &Exception{
	Message:    "full name is required",
	StatusCode: http.StatusBadRequest,
}
