package services

import (
	"errors"
	"strings"

	"github.com/navarrastar/devfolio/pkg/models"
)

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrFormLocked         = errors.New("contact form does not accept input in its current state")
	ErrNotResettable      = errors.New("contact form can only be reset after a submission finished")
	ErrUnknownField       = errors.New("unknown contact form field")
)

// ValidationError is returned by Submit when at least one field breaks a rule
type ValidationError struct {
	Errors models.FormErrors
}

func (e *ValidationError) Error() string {
	var fields []string
	for _, f := range models.Fields {
		if _, ok := e.Errors[f]; ok {
			fields = append(fields, string(f))
		}
	}
	return "invalid contact form: " + strings.Join(fields, ", ")
}
