package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"
)

type SubmitRSVPInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Attending      bool   `json:"attending"`
	AttendanceType string `json:"attendance_type"`
}

type UpdateRSVPInput struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Attending      *bool   `json:"attending"`
	AttendanceType *string `json:"attendance_type"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var rsvpSortColumns = map[string]bool{
	"first_name":      true,
	"last_name":       true,
	"email":           true,
	"attending":       true,
	"attendance_type": true,
	"created_at":      true,
	"updated_at":      true,
}

// SubmitRSVP godoc
// @Summary Submit an RSVP
// @Description Validates a submission against the guest list and persists it
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body SubmitRSVPInput true "RSVP submission"
// @Success 201 {object} map[string]interface{} "RSVP created"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 403 {object} map[string]string "Not on the guest list"
// @Failure 409 {object} map[string]string "Duplicate RSVP"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rsvp [post]
func SubmitRSVP(c *gin.Context) {
	var input SubmitRSVPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)

	if firstName == "" || lastName == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name, last name and email are required"})
		return
	}

	// One RSVP per name. Checked before anything else so a resubmission gets
	// the duplicate message rather than tripping over a later check.
	taken, err := models.RSVPNameTaken(database.DB, firstName, lastName)
	if err != nil {
		slog.Error("duplicate check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP. Please try again."})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "We have already received an RSVP under this name."})
		return
	}

	if !emailRegex.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	guest, err := models.FindGuestByName(database.DB, firstName, lastName)
	if err != nil {
		slog.Error("guest list lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP. Please try again."})
		return
	}
	if guest == nil || !guest.Enabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your name is not in our guest list. Please contact us if you believe this is an error."})
		return
	}

	attendanceType := input.AttendanceType
	if input.Attending {
		if !models.ValidAttendanceType(attendanceType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attendance type"})
			return
		}
	} else {
		// Not attending: the type is meaningless, stored as the default.
		attendanceType = models.AttendanceBoth
	}

	rsvp := models.RSVP{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          strings.ToLower(email),
		Attending:      input.Attending,
		AttendanceType: attendanceType,
	}

	if err := database.DB.Create(&rsvp).Error; err != nil {
		slog.Error("failed to insert RSVP", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":            "RSVP submitted successfully",
		"data":               rsvp,
		"confirmation_token": utils.GenerateConfirmationToken(rsvp.ID),
	})
}

// GetConfirmation godoc
// @Summary Resolve a confirmation token
// @Description Decodes the token and returns the matching RSVP with guest info
// @Tags rsvp
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} map[string]interface{} "RSVP details"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/confirmation/{token} [get]
func GetConfirmation(c *gin.Context) {
	// Fails closed: decode failure, missing record and lookup error all
	// collapse into the same not-found result.
	id, err := utils.DecodeConfirmationToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		return
	}

	var rsvp models.RSVP
	if err := database.DB.First(&rsvp, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("failed to fetch RSVP", "error", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		return
	}

	// is_inc is recomputed on every view, never stored on the RSVP.
	guest, err := models.FindGuestByName(database.DB, rsvp.FirstName, rsvp.LastName)
	if err != nil {
		slog.Error("guest list lookup failed", "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         rsvp,
		"guest_is_inc": guest != nil && guest.IsInc,
	})
}

// filteredRSVPs builds a fresh RSVP query with the attendance filter and name
// search applied. A non-"all" filter implies attending=true.
func filteredRSVPs(filter, search string) *gorm.DB {
	q := database.DB.Model(&models.RSVP{})
	if filter != "all" && models.ValidAttendanceType(filter) {
		q = q.Where("attending = ? AND attendance_type = ?", true, filter)
	}
	return applyNameSearch(q, search)
}

// GetRSVPs godoc
// @Summary List RSVPs
// @Description Returns a page of RSVPs plus dashboard totals
// @Tags rsvps
// @Produce json
// @Security AdminCookie
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Rows per page"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Param filter query string false "all, church, reception or both"
// @Param search query string false "Name substring"
// @Success 200 {object} map[string]interface{} "Page of RSVPs"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/rsvps [get]
func GetRSVPs(c *gin.Context) {
	params := parsePageParams(c, rsvpSortColumns, "created_at")
	filter := c.DefaultQuery("filter", "all")

	var totalFiltered int64
	if err := filteredRSVPs(filter, params.Search).Count(&totalFiltered).Error; err != nil {
		slog.Error("failed to count RSVPs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs."})
		return
	}

	var rsvps []models.RSVP
	err := filteredRSVPs(filter, params.Search).
		Order(params.order()).
		Offset(params.Page * params.PageSize).
		Limit(params.PageSize).
		Find(&rsvps).Error
	if err != nil {
		slog.Error("failed to fetch RSVPs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs."})
		return
	}

	stats, err := rsvpStats()
	if err != nil {
		slog.Error("failed to compute RSVP stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":           rsvps,
		"total_filtered": totalFiltered,
		"stats":          stats,
	})
}

// rsvpStats computes the dashboard totals shown above the RSVP table.
func rsvpStats() (gin.H, error) {
	counts := []struct {
		key   string
		query *gorm.DB
	}{
		{"total_all", database.DB.Model(&models.RSVP{})},
		{"total_attending", database.DB.Model(&models.RSVP{}).Where("attending = ?", true)},
		{"total_not_attending", database.DB.Model(&models.RSVP{}).Where("attending = ?", false)},
		{"total_church", database.DB.Model(&models.RSVP{}).Where("attending = ? AND attendance_type = ?", true, models.AttendanceChurch)},
		{"total_reception", database.DB.Model(&models.RSVP{}).Where("attending = ? AND attendance_type = ?", true, models.AttendanceReception)},
		{"total_both", database.DB.Model(&models.RSVP{}).Where("attending = ? AND attendance_type = ?", true, models.AttendanceBoth)},
	}

	stats := gin.H{}
	for _, c := range counts {
		var n int64
		if err := c.query.Count(&n).Error; err != nil {
			return nil, err
		}
		stats[c.key] = n
	}
	return stats, nil
}

// UpdateRSVP godoc
// @Summary Update an RSVP
// @Description Applies recognized fields only; unknown fields are ignored
// @Tags rsvps
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "RSVP ID"
// @Param rsvp body UpdateRSVPInput true "Fields to update"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/rsvps/{id} [put]
func UpdateRSVP(c *gin.Context) {
	var rsvp models.RSVP
	if err := database.DB.First(&rsvp, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
		return
	}

	var input UpdateRSVPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Attending != nil {
		updates["attending"] = *input.Attending
	}
	if input.AttendanceType != nil && models.ValidAttendanceType(*input.AttendanceType) {
		updates["attendance_type"] = *input.AttendanceType
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&rsvp).Updates(updates).Error; err != nil {
			slog.Error("failed to update RSVP", "id", rsvp.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update RSVP."})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP updated successfully"})
}

// DeleteRSVP godoc
// @Summary Delete an RSVP
// @Tags rsvps
// @Produce json
// @Security AdminCookie
// @Param id path string true "RSVP ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/rsvps/{id} [delete]
func DeleteRSVP(c *gin.Context) {
	if err := database.DB.Delete(&models.RSVP{}, "id = ?", c.Param("id")).Error; err != nil {
		slog.Error("failed to delete RSVP", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete RSVP."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP deleted successfully"})
}

// ExportRSVPs godoc
// @Summary Export RSVPs as CSV
// @Description Full filtered set, ignoring pagination
// @Tags rsvps
// @Produce text/csv
// @Security AdminCookie
// @Param filter query string false "all, church, reception or both"
// @Param search query string false "Name substring"
// @Success 200 {string} string "CSV data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/rsvps/export [get]
func ExportRSVPs(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	search := strings.TrimSpace(c.Query("search"))

	var rsvps []models.RSVP
	if err := filteredRSVPs(filter, search).Order("created_at desc").Find(&rsvps).Error; err != nil {
		slog.Error("failed to fetch RSVPs for export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs."})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=rsvps-%s.csv", time.Now().Format("2006-01-02")))

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"first_name", "last_name", "email", "attending", "attendance_type", "reminder_sent", "created_at", "updated_at"})
	for _, r := range rsvps {
		w.Write([]string{
			r.FirstName,
			r.LastName,
			r.Email,
			strconv.FormatBool(r.Attending),
			r.AttendanceType,
			strconv.FormatBool(r.ReminderSent),
			r.CreatedAt.Format(time.RFC3339),
			r.UpdatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}
