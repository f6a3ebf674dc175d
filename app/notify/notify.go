// Package notify delivers job change events to webhooks
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Sender delivers text to destination, implemented by notify.Webhook
type Sender interface {
	Send(ctx context.Context, destination, text string) error
}

// Message is the JSON body posted to webhooks
type Message struct {
	Event  string    `json:"event"`
	ID     string    `json:"id"`
	Slug   string    `json:"slug"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
	TS     time.Time `json:"ts"`
}

// Webhooks sends job events to all configured urls
type Webhooks struct {
	urls   []string
	sender Sender
}

// NewWebhooks makes webhook notifier, returns nil if no urls configured
func NewWebhooks(urls []string, timeout time.Duration) *Webhooks {
	if len(urls) == 0 {
		return nil
	}
	wh := notify.NewWebhook(notify.WebhookParams{
		Timeout: timeout,
		Headers: []string{"Content-Type:application/json"},
	})
	log.Printf("[INFO] webhook notifications enabled for %d url(s)", len(urls))
	return &Webhooks{urls: urls, sender: wh}
}

// Notify posts event message to every url. All urls are tried, errors combined.
func (w *Webhooks) Notify(ctx context.Context, event enums.EventType, job jobs.Job) error {
	data, err := json.Marshal(Message{
		Event:  event.String(),
		ID:     job.ID,
		Slug:   job.Slug,
		Title:  job.Title,
		Status: job.Status.String(),
		TS:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", event, err)
	}

	var errs []error
	for _, u := range w.urls {
		if err := w.sender.Send(ctx, u, string(data)); err != nil {
			errs = append(errs, fmt.Errorf("webhook %s: %w", u, err))
			continue
		}
		log.Printf("[DEBUG] sent %s notification for job %s to %s", event, job.ID, u)
	}
	return errors.Join(errs...)
}
