package validators

import (
	"time"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/services"
)

// TaskInput checks the shared task fields and maps the priority label onto
// its enum value.
func TaskInput(title, description, priority string, deadline time.Time) (services.TaskInput, error) {
	if title == "" {
		return services.TaskInput{}, apperrors.ErrTitleRequired
	}

	p, ok := constants.ParsePriority(priority)
	if !ok {
		return services.TaskInput{}, apperrors.ErrInvalidPriority
	}

	return services.TaskInput{
		Title:       title,
		Description: description,
		Priority:    p,
		Deadline:    deadline,
	}, nil
}
