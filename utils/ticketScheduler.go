package utils

import (
	"codelab/database"
	supportModels "codelab/models/support"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeTicketScheduler sets up the support ticket auto-close scheduler
func InitializeTicketScheduler() {
	log.Println("[TICKET-SCHEDULER] Initializing ticket scheduler...")

	c := cron.New()

	// Run hourly to close expired open tickets
	c.AddFunc("0 * * * *", func() {
		log.Println("[TICKET-SCHEDULER] Running hourly ticket expiry check...")
		AutoCloseExpiredTickets()
	})

	c.Start()
	log.Println("[TICKET-SCHEDULER] Ticket scheduler started - runs hourly")
}

// AutoCloseExpiredTickets closes OPEN tickets whose expiry has passed.
func AutoCloseExpiredTickets() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&supportModels.SupportTicket{}).
		Where("status = ? AND expires_at < ? AND is_deleted = false", supportModels.TicketOpen, now).
		Updates(map[string]interface{}{
			"status":    supportModels.TicketClosed,
			"closed_by": supportModels.ClosedByAuto,
			"closed_at": now,
		})

	if result.Error != nil {
		log.Printf("[TICKET-SCHEDULER] Error closing expired tickets: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[TICKET-SCHEDULER] Auto-closed %d expired tickets", result.RowsAffected)

		// Notify requesters closed within this run
		var closed []supportModels.SupportTicket
		db.Where("status = ? AND closed_by = ? AND closed_at > ?",
			supportModels.TicketClosed, supportModels.ClosedByAuto, now.Add(-time.Minute)).
			Find(&closed)

		for _, t := range closed {
			if t.Email != "" {
				SendTicketClosedEmail(t.Email, t.Subject, t.ID)
			}
		}
	}
}
