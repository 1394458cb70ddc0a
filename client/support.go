package client

import (
	"context"
	"fmt"
	"time"
)

// OpenTicket opens an authenticated support ticket.
func (c *Client) OpenTicket(ctx context.Context, subject, message string) (*Ticket, error) {
	var ticket Ticket
	err := c.post(ctx, "/support", map[string]string{
		"subject": subject,
		"message": message,
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ReplyTicket appends a message to a ticket. If the ticket was already
// closed the server opens a new one; the returned ticket reflects that.
func (c *Client) ReplyTicket(ctx context.Context, ticketID uint, message string) (*Ticket, error) {
	var ticket Ticket
	err := c.post(ctx, fmt.Sprintf("/support/%d/reply", ticketID), map[string]string{
		"message": message,
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CloseTicket closes the caller's own ticket.
func (c *Client) CloseTicket(ctx context.Context, ticketID uint) error {
	return c.post(ctx, fmt.Sprintf("/support/%d/close", ticketID), nil, nil)
}

// OpenAnonymousTicket opens a ticket without authentication. Reading the
// thread later requires RequestAnonymousAccess + VerifyAnonymousAccess.
func (c *Client) OpenAnonymousTicket(ctx context.Context, name, email, subject, message string) (*Ticket, error) {
	var ticket Ticket
	err := c.post(ctx, "/support/anonymous", map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// RequestAnonymousAccess asks the server to email a verification code.
func (c *Client) RequestAnonymousAccess(ctx context.Context, email string) error {
	return c.post(ctx, "/support/anonymous/access/request", map[string]string{
		"email": email,
	}, nil)
}

// AnonymousAccess is the credential returned by a successful verification.
type AnonymousAccess struct {
	AccessToken    string    `json:"access_token"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

// VerifyAnonymousAccess swaps an emailed code for an access token and
// attaches it to the client for subsequent anonymous reads.
func (c *Client) VerifyAnonymousAccess(ctx context.Context, email, code string) (*AnonymousAccess, error) {
	var access AnonymousAccess
	err := c.post(ctx, "/support/anonymous/access/verify", map[string]string{
		"email": email,
		"code":  code,
	}, &access)
	if err != nil {
		return nil, err
	}
	c.http.SetHeader("X-Access-Token", access.AccessToken)
	return &access, nil
}

// AnonymousTickets lists the verified email's tickets. Requires a prior
// successful VerifyAnonymousAccess on this client.
func (c *Client) AnonymousTickets(ctx context.Context) ([]Ticket, error) {
	var payload struct {
		Tickets []Ticket `json:"tickets"`
	}
	if err := c.get(ctx, "/support/anonymous/tickets", &payload); err != nil {
		return nil, err
	}
	if payload.Tickets == nil {
		payload.Tickets = []Ticket{}
	}
	return payload.Tickets, nil
}
