package errors

import "net/http"

// ErrStatusRecordMissing marks an assignment without its status record, a
// state that only a prior partial failure can produce. Callers must refuse
// to operate on the record rather than guess a status.
var ErrStatusRecordMissing = &Exception{
	Message:    "assignment has no status record",
	StatusCode: http.StatusInternalServerError,
}
