package client

import (
	"context"
	"time"
)

// DefaultPollInterval is the refresh period for open chat and status views.
const DefaultPollInterval = 10 * time.Second

// TicketMessage is one message of a support thread.
type TicketMessage struct {
	ID         uint      `json:"id"`
	SenderType string    `json:"sender_type"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

// Ticket is a support ticket with its message thread.
type Ticket struct {
	ID             uint            `json:"id"`
	Subject        string          `json:"subject"`
	Status         string          `json:"status"`
	ClosedBy       string          `json:"closed_by"`
	ReopenedFromID uint            `json:"reopened_from_id"`
	Messages       []TicketMessage `json:"messages"`
}

// TicketSnapshot is one polling result. Err is set when a poll failed; the
// watcher keeps going until the context is cancelled.
type TicketSnapshot struct {
	Tickets []Ticket
	Err     error
}

// SystemStatus mirrors the maintenance flags the clients poll.
type SystemStatus struct {
	AppMaintenance bool   `json:"app_maintenance"`
	Message        string `json:"message"`
}

// StatusSnapshot is one system status poll result.
type StatusSnapshot struct {
	Status SystemStatus
	Err    error
}

// WatchTickets polls the caller's support tickets on the given interval and
// delivers each snapshot on the returned channel. Polling starts with an
// immediate fetch and stops, closing the channel, when ctx is cancelled —
// tie ctx to the chat view's lifetime so no timer outlives it.
func (c *Client) WatchTickets(ctx context.Context, interval time.Duration) <-chan TicketSnapshot {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	out := make(chan TicketSnapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		poll := func() {
			var payload struct {
				Tickets []Ticket `json:"tickets"`
			}
			err := c.get(ctx, "/support/list", &payload)
			if payload.Tickets == nil {
				payload.Tickets = []Ticket{}
			}
			select {
			case out <- TicketSnapshot{Tickets: payload.Tickets, Err: err}:
			case <-ctx.Done():
			}
		}

		poll()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()

	return out
}

// WatchSystemStatus polls the maintenance flags, same lifecycle contract as
// WatchTickets.
func (c *Client) WatchSystemStatus(ctx context.Context, interval time.Duration) <-chan StatusSnapshot {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	out := make(chan StatusSnapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		poll := func() {
			var status SystemStatus
			err := c.get(ctx, "/system/status", &status)
			select {
			case out <- StatusSnapshot{Status: status, Err: err}:
			case <-ctx.Done():
			}
		}

		poll()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()

	return out
}
