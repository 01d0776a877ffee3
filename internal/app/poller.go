// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram" // Import from domain
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Stage names a step of a poll iteration.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageValidate Stage = "validate"
	StageDerive   Stage = "derive"
)

// StageError is returned by RunOnce when a stage aborts the iteration.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves the raw status response for changes since fromDate.
type Fetcher interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}

// Poller checks the homework status endpoint and notifies the chat when the
// most recent homework changes status.
type Poller struct {
	fetcher  Fetcher
	client   domainTelegram.Client
	journal  homework.EventRepository // nil disables the journal
	tracker  *homework.StatusTracker
	verdicts homework.Verdicts
	chatID   string
	cursor   atomic.Int64
	logger   *logrus.Entry
	now      func() time.Time
}

func NewPoller(
	fetcher Fetcher,
	client domainTelegram.Client,
	journal homework.EventRepository,
	verdicts homework.Verdicts,
	chatID string,
	startCursor int64,
	logger *logrus.Entry,
) *Poller {
	p := &Poller{
		fetcher:  fetcher,
		client:   client,
		journal:  journal,
		tracker:  homework.NewStatusTracker(),
		verdicts: verdicts,
		chatID:   chatID,
		logger:   logger,
		now:      time.Now,
	}
	p.cursor.Store(startCursor)
	return p
}

// Cursor returns the lower bound of the next fetch window.
func (p *Poller) Cursor() int64 {
	return p.cursor.Load()
}

// Snapshot returns the last notified status of every homework seen so far.
func (p *Poller) Snapshot() []homework.TrackedStatus {
	return p.tracker.Snapshot()
}

// Poll runs one iteration and logs its failure as critical. It never returns
// an error so that the surrounding loop keeps going.
func (p *Poller) Poll(ctx context.Context) {
	log := p.logger.WithField("iteration_id", uuid.NewString())
	if err := p.runOnce(ctx, log); err != nil {
		logger.Critical(log, err, "Program failure")
	}
}

// RunOnce performs fetch, validate, derive and notify for a single iteration.
func (p *Poller) RunOnce(ctx context.Context) error {
	return p.runOnce(ctx, p.logger)
}

func (p *Poller) runOnce(ctx context.Context, log *logrus.Entry) error {
	cursor := p.cursor.Load()
	log = log.WithField("from_date", cursor)

	response, err := p.fetcher.Fetch(ctx, cursor)
	if err != nil {
		return &StageError{Stage: StageFetch, Err: err}
	}

	records, err := practicum.ValidateResponse(response, log)
	if err != nil {
		return &StageError{Stage: StageValidate, Err: err}
	}

	if len(records) > 0 {
		log.Debug("New homework result received")
		if err := p.handleRecord(ctx, records[0], log); err != nil {
			return &StageError{Stage: StageDerive, Err: err}
		}
	} else {
		log.Debug("No homework updates")
	}

	if currentDate, ok := practicum.CurrentDate(response); ok {
		p.cursor.Store(currentDate)
	}
	return nil
}

func (p *Poller) handleRecord(ctx context.Context, record homework.Record, log *logrus.Entry) error {
	name, _ := record.Name()
	n, err := homework.ParseStatus(record, p.tracker.LastSeen(name), p.verdicts)
	if err != nil {
		return err
	}

	log = log.WithFields(logrus.Fields{
		"homework_name": n.HomeworkName,
		"status":        n.Status,
	})
	if !n.Changed {
		log.Debug("Status has not changed")
		return nil
	}

	p.tracker.Remember(n.HomeworkName, n.Status)
	delivered := p.notify(n.Text, log)
	p.record(ctx, n, delivered, log)
	return nil
}

// notify delivers message to the configured chat. Failures are logged only.
func (p *Poller) notify(message string, log *logrus.Entry) bool {
	if err := p.client.SendMessage(p.chatID, message, nil); err != nil {
		log.WithError(&domainTelegram.DeliveryError{ChatID: p.chatID, Err: err}).Error("Cannot send message to chat")
		return false
	}
	log.Debug("Message sent")
	return true
}

func (p *Poller) record(ctx context.Context, n homework.Notification, delivered bool, log *logrus.Entry) {
	if p.journal == nil {
		return
	}
	event := homework.NewStatusEvent(n, delivered, p.now())
	if err := p.journal.SaveEvent(ctx, event); err != nil {
		log.WithError(err).WithField("event_id", event.ID).Error("Failed to save status event")
	}
}
