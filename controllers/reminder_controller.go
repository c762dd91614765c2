package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/mailer"
	"wedding-backend/models"
)

// Mail dispatches reminder emails. Set at startup when the email provider is
// configured; left nil otherwise, which disables the reminder endpoints.
var Mail mailer.Sender

// SendReminder godoc
// @Summary Send a reminder to one RSVP
// @Description Always sends, regardless of reminder_sent, allowing re-sends
// @Tags reminders
// @Produce json
// @Security AdminCookie
// @Param id path string true "RSVP ID"
// @Success 200 {object} map[string]interface{} "Reminder sent"
// @Failure 400 {object} map[string]string "Guest not attending"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Send failure"
// @Router /api/admin/reminders/send/{id} [post]
func SendReminder(c *gin.Context) {
	if Mail == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service is not configured. Set RESEND_API_KEY and RESEND_FROM_EMAIL."})
		return
	}

	var rsvp models.RSVP
	if err := database.DB.First(&rsvp, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found."})
		return
	}

	if !rsvp.Attending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This guest is not attending and will not receive a reminder."})
		return
	}

	if err := dispatchReminder(&rsvp); err != nil {
		slog.Error("failed to send reminder", "email", rsvp.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true, "message": "Reminder sent successfully."})
}

// SendAllReminders godoc
// @Summary Send reminders to all pending RSVPs
// @Description Attending RSVPs without a prior reminder; per-recipient failures are reported, not fatal
// @Tags reminders
// @Produce json
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "Counts of sent and failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/reminders/send [post]
func SendAllReminders(c *gin.Context) {
	if Mail == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service is not configured. Set RESEND_API_KEY and RESEND_FROM_EMAIL."})
		return
	}

	var rsvps []models.RSVP
	if err := database.DB.Where("attending = ? AND reminder_sent = ?", true, false).Find(&rsvps).Error; err != nil {
		slog.Error("failed to fetch RSVPs for bulk reminder", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs."})
		return
	}

	if len(rsvps) == 0 {
		c.JSON(http.StatusOK, gin.H{"sent": 0, "message": "No pending reminders to send."})
		return
	}

	// Candidates are processed one at a time; partial success is the expected
	// terminal state.
	sent := 0
	var failed []string
	for i := range rsvps {
		if err := dispatchReminder(&rsvps[i]); err != nil {
			slog.Error("failed to send reminder", "email", rsvps[i].Email, "error", err)
			failed = append(failed, rsvps[i].Email)
			continue
		}
		sent++
	}

	msg := fmt.Sprintf("Sent %d reminder", sent)
	if sent != 1 {
		msg += "s"
	}
	msg += "."
	if len(failed) > 0 {
		msg += fmt.Sprintf(" %d failed.", len(failed))
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": len(failed), "message": msg})
}

// dispatchReminder renders and sends one reminder email, then marks the RSVP.
// A failure to mark is logged but does not undo a successful send.
func dispatchReminder(rsvp *models.RSVP) error {
	guest, err := models.FindGuestByName(database.DB, rsvp.FirstName, rsvp.LastName)
	if err != nil {
		// The soft join is display-only here; send with default content.
		slog.Error("guest list lookup failed", "error", err)
	}
	isInc := guest != nil && guest.IsInc

	daysAway, dateFormatted := weddingCountdown(time.Now())

	html, err := mailer.RenderReminder(mailer.ReminderData{
		FirstName:            rsvp.FirstName,
		AttendanceType:       rsvp.AttendanceType,
		IsInc:                isInc,
		DaysAway:             daysAway,
		DaysLabel:            daysLabel(daysAway),
		WeddingDateFormatted: dateFormatted,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Our wedding is %s!", daysLabel(daysAway))
	if err := Mail.Send(rsvp.Email, subject, html); err != nil {
		return err
	}

	now := time.Now()
	err = database.DB.Model(rsvp).Updates(map[string]interface{}{
		"reminder_sent":    true,
		"reminder_sent_at": now,
	}).Error
	if err != nil {
		slog.Error("failed to mark reminder as sent", "id", rsvp.ID, "error", err)
	}
	return nil
}

// weddingCountdown returns whole days between today and the configured
// wedding date (midnight to midnight, rounded up) and the formatted date.
func weddingCountdown(now time.Time) (int, string) {
	wedding, err := time.Parse("2006-01-02", config.C.WeddingDate)
	if err != nil {
		wedding, _ = time.Parse("2006-01-02", config.DefaultWeddingDate)
	}

	// Both sides truncated to midnight UTC so the difference is whole days.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := wedding.Sub(today)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}

	return days, wedding.Format("Monday, January 2, 2006")
}

func daysLabel(daysAway int) string {
	switch daysAway {
	case 0:
		return "today"
	case 1:
		return "just 1 day away"
	default:
		return fmt.Sprintf("%d days away", daysAway)
	}
}
