package errors

import "net/http"

var ErrAssignmentNotFound = &Exception{
	Message:    "task assignment not found",
	StatusCode: http.StatusNotFound,
}
