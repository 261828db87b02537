package errors

import "net/http"

var ErrInvalidDateRange = &Exception{
	Message:    "from date must not be after to date",
	StatusCode: http.StatusBadRequest,
}
