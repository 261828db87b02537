package validators

import (
	"time"

	"taskpro.com/taskpro/internal/constants"
	dto "taskpro.com/taskpro/internal/data_models"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/services"
)

const dateLayout = "2006-01-02"

// ReportFilter maps the transport filter onto the service filter,
// rejecting malformed dates, inverted ranges and unknown statuses.
func ReportFilter(r *dto.ReportRequest) (services.ReportFilter, error) {
	filter := services.ReportFilter{UserID: r.UserID}

	if r.FromDate != nil {
		from, err := time.Parse(dateLayout, *r.FromDate)
		if err != nil {
			return services.ReportFilter{}, apperrors.ErrInvalidDateRange
		}
		filter.FromDate = &from
	}
	if r.ToDate != nil {
		to, err := time.Parse(dateLayout, *r.ToDate)
		if err != nil {
			return services.ReportFilter{}, apperrors.ErrInvalidDateRange
		}
		filter.ToDate = &to
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return services.ReportFilter{}, apperrors.ErrInvalidDateRange
	}

	if r.Status != nil {
		status, ok := constants.ParseStatus(*r.Status)
		if !ok {
			return services.ReportFilter{}, apperrors.ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}
