// Package export renders report rows as delimited text. The core hands
// rows over and stays agnostic to the encoding.
package export

import (
	"fmt"
	"strings"
	"time"

	"taskpro.com/taskpro/internal/services"
)

const header = "Task Title,Assigned User,Status,Created Date,LastUpdated Date"

// ReportCSV renders the rows as CSV, one line per row after the header.
// Text fields are always quoted; dates are yyyy-MM-dd; a missing
// last-updated date is an empty cell. Output is a pure function of the
// rows, so identical inputs export byte-for-byte identically.
func ReportCSV(rows []services.ReportRow) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			escape(r.TaskTitle),
			escape(r.AssignedUser),
			escape(r.Status),
			r.CreatedDate.Format("2006-01-02"),
			formatDate(r.LastUpdated),
		)
	}

	return []byte(b.String())
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func escape(value string) string {
	if value == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
