package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navarrastar/devfolio/pkg/models"
	"github.com/navarrastar/devfolio/pkg/utils"
)

// ContactForm owns one visitor's contact form: field values, the errors of
// the last validation run and the submission status.
//
// Status transitions:
//
//	idle    --Submit(valid)-->   sending
//	idle    --Submit(invalid)--> idle (errors populated)
//	sending --submitter ok-->    success (fields cleared)
//	sending --submitter err-->   error (fields kept)
//	success --Reset-->           idle
//	error   --Submit/Reset-->    sending / idle
type ContactForm struct {
	mu        sync.Mutex
	form      models.FormData
	errors    models.FormErrors
	status    models.SubmissionStatus
	inflight  chan struct{}
	validator *Validator
	submitter Submitter
	logger    *zap.Logger
	newID     func() string
}

// NewContactForm creates an idle, empty contact form
func NewContactForm(submitter Submitter, validator *Validator, logger *zap.Logger) *ContactForm {
	return &ContactForm{
		errors:    models.FormErrors{},
		status:    models.StatusIdle,
		validator: validator,
		submitter: submitter,
		logger:    logger,
		newID:     func() string { return uuid.NewString() },
	}
}

// State returns a copy of the current form state
func (c *ContactForm) State() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.FormState{
		Status: c.status,
		Form:   c.form,
		Errors: c.errors.Clone(),
	}
}

// Status returns the current submission status
func (c *ContactForm) Status() models.SubmissionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Update applies an edit to one field and clears that field's error
func (c *ContactForm) Update(field models.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.status.AcceptsEdits() {
		return ErrFormLocked
	}

	c.form.Set(field, value)
	delete(c.errors, field)
	return nil
}

// Submit validates the form and, when valid, starts delivering it.
// Delivery runs detached from ctx's cancellation; use Wait to observe it.
func (c *ContactForm) Submit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status {
	case models.StatusSending:
		return ErrSubmissionInFlight
	case models.StatusSuccess:
		return ErrFormLocked
	}

	if errs := c.validator.Validate(c.form); len(errs) > 0 {
		c.errors = errs
		return &ValidationError{Errors: errs.Clone()}
	}
	c.errors = models.FormErrors{}

	data := Normalize(c.form)
	msg := models.ContactMessage{
		ID:      c.newID(),
		Name:    data.Name,
		Email:   data.Email,
		Subject: data.Subject,
		Message: data.Message,
	}

	done := make(chan struct{})
	c.inflight = done
	c.status = models.StatusSending

	c.logger.Info("Processing contact submission",
		zap.String("id", msg.ID),
		zap.String("email_hash", utils.HashEmail(msg.Email)))

	go c.deliver(context.WithoutCancel(ctx), msg, done)
	return nil
}

func (c *ContactForm) deliver(ctx context.Context, msg models.ContactMessage, done chan struct{}) {
	defer close(done)

	err := c.submitter.Submit(ctx, msg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Error("Error delivering contact message", zap.String("id", msg.ID), zap.Error(err))
		c.status = models.StatusError
		return
	}

	c.form = models.FormData{}
	c.status = models.StatusSuccess
	c.logger.Info("Contact message delivered", zap.String("id", msg.ID))
}

// Reset returns a finished form to idle with empty fields
func (c *ContactForm) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != models.StatusSuccess && c.status != models.StatusError {
		return ErrNotResettable
	}

	c.form = models.FormData{}
	c.errors = models.FormErrors{}
	c.status = models.StatusIdle
	return nil
}

// Wait blocks until the in-flight submission, if any, has resolved
func (c *ContactForm) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.inflight
	c.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
