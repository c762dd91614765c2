package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wedding-backend/database"
	"wedding-backend/models"
)

type CreateGuestInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsInc     bool   `json:"is_inc"`
}

type UpdateGuestInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Enabled   *bool   `json:"enabled"`
	IsInc     *bool   `json:"is_inc"`
}

// ImportResult accumulates the outcome of a CSV import batch.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

var guestSortColumns = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"enabled":    true,
	"is_inc":     true,
	"created_at": true,
	"updated_at": true,
}

// GetGuests godoc
// @Summary List guests
// @Tags guests
// @Produce json
// @Security AdminCookie
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Rows per page"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Param search query string false "Name substring"
// @Success 200 {object} map[string]interface{} "Page of guests"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests [get]
func GetGuests(c *gin.Context) {
	params := parsePageParams(c, guestSortColumns, "created_at")

	filtered := func() *gorm.DB {
		return applyNameSearch(database.DB.Model(&models.Guest{}), params.Search)
	}

	var totalFiltered int64
	if err := filtered().Count(&totalFiltered).Error; err != nil {
		slog.Error("failed to count guests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests."})
		return
	}

	var guests []models.Guest
	err := filtered().
		Order(params.order()).
		Offset(params.Page * params.PageSize).
		Limit(params.PageSize).
		Find(&guests).Error
	if err != nil {
		slog.Error("failed to fetch guests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":           guests,
		"total_filtered": totalFiltered,
	})
}

// CreateGuest godoc
// @Summary Add a guest to the list
// @Description Rejects names colliding with an existing guest or RSVP
// @Tags guests
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param guest body CreateGuestInput true "Guest"
// @Success 201 {object} map[string]interface{} "Guest created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests [post]
func CreateGuest(c *gin.Context) {
	var input CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required."})
		return
	}

	// Same cross-table duplicate checks as the public admission flow.
	exists, err := models.GuestNameTaken(database.DB, firstName, lastName)
	if err != nil {
		slog.Error("guest duplicate check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guest."})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Guest already exists in the list."})
		return
	}

	inRSVPs, err := models.RSVPNameTaken(database.DB, firstName, lastName)
	if err != nil {
		slog.Error("rsvp duplicate check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guest."})
		return
	}
	if inRSVPs {
		c.JSON(http.StatusConflict, gin.H{"error": "This guest has already submitted an RSVP."})
		return
	}

	guest := models.Guest{
		FirstName: firstName,
		LastName:  lastName,
		Enabled:   true,
		IsInc:     input.IsInc,
	}

	if err := database.DB.Create(&guest).Error; err != nil {
		slog.Error("failed to insert guest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guest."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest added successfully",
		"data":    guest,
	})
}

// UpdateGuest godoc
// @Summary Update a guest
// @Description Applies recognized fields only; unknown fields are ignored
// @Tags guests
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "Guest ID"
// @Param guest body UpdateGuestInput true "Fields to update"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests/{id} [put]
func UpdateGuest(c *gin.Context) {
	var guest models.Guest
	if err := database.DB.First(&guest, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var input UpdateGuestInput
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
	if input.Enabled != nil {
		updates["enabled"] = *input.Enabled
	}
	if input.IsInc != nil {
		updates["is_inc"] = *input.IsInc
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&guest).Updates(updates).Error; err != nil {
			slog.Error("failed to update guest", "id", guest.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest."})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest updated successfully"})
}

// DeleteGuest godoc
// @Summary Delete a guest
// @Tags guests
// @Produce json
// @Security AdminCookie
// @Param id path string true "Guest ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests/{id} [delete]
func DeleteGuest(c *gin.Context) {
	if err := database.DB.Delete(&models.Guest{}, "id = ?", c.Param("id")).Error; err != nil {
		slog.Error("failed to delete guest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

// ImportGuests godoc
// @Summary Bulk import guests from CSV
// @Description Best-effort batch: bad lines are skipped and reported, the rest import
// @Tags guests
// @Accept text/csv
// @Produce json
// @Security AdminCookie
// @Success 200 {object} ImportResult "Import summary"
// @Failure 400 {object} map[string]string "Unreadable body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/admin/guests/import [post]
func ImportGuests(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	result := importGuestCSV(database.DB, string(body))
	c.JSON(http.StatusOK, result)
}

// importGuestCSV runs the best-effort CSV batch: per-line validation and
// duplicate suppression, never aborting the whole batch on a bad line.
// Duplicates count as skipped without an error entry; validation failures
// are skipped with one.
func importGuestCSV(db *gorm.DB, raw string) ImportResult {
	result := ImportResult{Errors: []string{}}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		// A first line that looks like column names is a header, not data.
		if line == 1 && len(record) > 0 && strings.Contains(strings.ToLower(record[0]), "first") {
			continue
		}

		if len(record) < 2 || strings.TrimSpace(record[0]) == "" || strings.TrimSpace(record[1]) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: missing first or last name", line))
			continue
		}

		firstName := strings.TrimSpace(record[0])
		lastName := strings.TrimSpace(record[1])

		exists, err := models.GuestNameTaken(db, firstName, lastName)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: failed to check for duplicates", line))
			continue
		}
		if !exists {
			exists, err = models.RSVPNameTaken(db, firstName, lastName)
			if err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: failed to check for duplicates", line))
				continue
			}
		}
		if exists {
			result.Skipped++
			continue
		}

		guest := models.Guest{FirstName: firstName, LastName: lastName, Enabled: true}
		if err := db.Create(&guest).Error; err != nil {
			slog.Error("failed to import guest", "line", line, "error", err)
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: failed to save guest", line))
			continue
		}
		result.Imported++
	}

	return result
}

// ExportGuests godoc
// @Summary Export the guest list as CSV
// @Description Full set matching the current search, ignoring pagination
// @Tags guests
// @Produce text/csv
// @Security AdminCookie
// @Param search query string false "Name substring"
// @Success 200 {string} string "CSV data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests/export [get]
func ExportGuests(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	var guests []models.Guest
	err := applyNameSearch(database.DB.Model(&models.Guest{}), search).
		Order("created_at desc").
		Find(&guests).Error
	if err != nil {
		slog.Error("failed to fetch guests for export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests."})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=guest-list-%s.csv", time.Now().Format("2006-01-02")))

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"first_name", "last_name", "enabled", "is_inc", "created_at", "updated_at"})
	for _, g := range guests {
		w.Write([]string{
			g.FirstName,
			g.LastName,
			strconv.FormatBool(g.Enabled),
			strconv.FormatBool(g.IsInc),
			g.CreatedAt.Format(time.RFC3339),
			g.UpdatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}
