package errors

import "net/http"

var ErrEditConflict = &Exception{
	Message:    "task was modified concurrently",
	StatusCode: http.StatusConflict,
}
