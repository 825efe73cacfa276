package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/navarrastar/devfolio/pkg/clients/airtable"
	"github.com/navarrastar/devfolio/pkg/models"
	"github.com/navarrastar/devfolio/pkg/utils"
)

// DefaultSubmitDelay is how long the simulated send takes
const DefaultSubmitDelay = 1500 * time.Millisecond

// Submitter delivers a validated contact message
type Submitter interface {
	Submit(ctx context.Context, msg models.ContactMessage) error
}

// SubmitterFunc adapts a plain function to the Submitter interface
type SubmitterFunc func(ctx context.Context, msg models.ContactMessage) error

func (f SubmitterFunc) Submit(ctx context.Context, msg models.ContactMessage) error {
	return f(ctx, msg)
}

type simulatedSubmitter struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedSubmitter returns a submitter that waits for delay and always succeeds
func NewSimulatedSubmitter(delay time.Duration, logger *zap.Logger) Submitter {
	return &simulatedSubmitter{delay: delay, logger: logger}
}

func (s *simulatedSubmitter) Submit(ctx context.Context, msg models.ContactMessage) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info("Simulated contact message delivery",
		zap.String("id", msg.ID),
		zap.String("email_hash", utils.HashEmail(msg.Email)),
		zap.Duration("delay", s.delay))
	return nil
}

type airtableSubmitter struct {
	client airtable.Client
	table  string
	logger *zap.Logger
}

// NewAirtableSubmitter records every contact message as a row of an Airtable table
func NewAirtableSubmitter(client airtable.Client, table string, logger *zap.Logger) Submitter {
	return &airtableSubmitter{client: client, table: table, logger: logger}
}

func (s *airtableSubmitter) Submit(ctx context.Context, msg models.ContactMessage) error {
	// Same sender, subject and body means a resubmission of an already stored message
	hash := utils.HashString(utils.NormalizeEmail(msg.Email) + "\n" + msg.Subject + "\n" + msg.Message)

	exists, err := s.client.RecordExists(ctx, s.table, hash)
	if err != nil {
		return fmt.Errorf("checking Airtable table %s: %w", s.table, err)
	}
	if exists {
		s.logger.Info("Skipping contact message already present in Airtable",
			zap.String("id", msg.ID),
			zap.String("hash", hash))
		return nil
	}

	record := map[string]interface{}{
		"id":      msg.ID,
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"message": msg.Message,
		"hash":    hash,
	}
	if err := s.client.CreateRecord(ctx, s.table, record); err != nil {
		return fmt.Errorf("creating Airtable record: %w", err)
	}
	return nil
}

// MessageSaver persists contact messages
type MessageSaver interface {
	SaveMessage(ctx context.Context, msg models.ContactMessage, receivedAt time.Time) error
}

type storeSubmitter struct {
	store  MessageSaver
	now    func() time.Time
	logger *zap.Logger
}

// NewStoreSubmitter writes every contact message to a local store
func NewStoreSubmitter(store MessageSaver, logger *zap.Logger) Submitter {
	return &storeSubmitter{store: store, now: time.Now, logger: logger}
}

func (s *storeSubmitter) Submit(ctx context.Context, msg models.ContactMessage) error {
	if err := s.store.SaveMessage(ctx, msg, s.now().UTC()); err != nil {
		return fmt.Errorf("saving contact message: %w", err)
	}
	s.logger.Info("Stored contact message",
		zap.String("id", msg.ID),
		zap.String("email_hash", utils.HashEmail(msg.Email)))
	return nil
}
