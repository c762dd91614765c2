package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/models"
)

// setupTestDB points the global connection at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Guest{}, &models.RSVP{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	database.DB = db
	config.C.WeddingDate = config.DefaultWeddingDate
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/api/rsvp", SubmitRSVP)
	r.GET("/api/confirmation/:token", GetConfirmation)
	r.POST("/api/admin/login", Login)
	r.GET("/api/admin/rsvps", GetRSVPs)
	r.PUT("/api/admin/rsvps/:id", UpdateRSVP)
	r.DELETE("/api/admin/rsvps/:id", DeleteRSVP)
	r.GET("/api/admin/rsvps/export", ExportRSVPs)
	r.GET("/api/admin/guests", GetGuests)
	r.POST("/api/admin/guests", CreateGuest)
	r.POST("/api/admin/guests/import", ImportGuests)
	r.GET("/api/admin/guests/export", ExportGuests)
	r.PUT("/api/admin/guests/:id", UpdateGuest)
	r.DELETE("/api/admin/guests/:id", DeleteGuest)
	r.POST("/api/admin/reminders/send", SendAllReminders)
	r.POST("/api/admin/reminders/send/:id", SendReminder)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedGuest(t *testing.T, first, last string, enabled, isInc bool) models.Guest {
	t.Helper()
	guest := models.Guest{FirstName: first, LastName: last, Enabled: enabled, IsInc: isInc}
	if err := database.DB.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest %s %s: %v", first, last, err)
	}
	return guest
}

func seedRSVP(t *testing.T, rsvp models.RSVP) models.RSVP {
	t.Helper()
	if rsvp.AttendanceType == "" {
		rsvp.AttendanceType = models.AttendanceBoth
	}
	if err := database.DB.Create(&rsvp).Error; err != nil {
		t.Fatalf("seed rsvp %s %s: %v", rsvp.FirstName, rsvp.LastName, err)
	}
	return rsvp
}

func fetchRSVP(t *testing.T, id string) models.RSVP {
	t.Helper()
	var rsvp models.RSVP
	if err := database.DB.First(&rsvp, "id = ?", id).Error; err != nil {
		t.Fatalf("fetch rsvp %s: %v", id, err)
	}
	return rsvp
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
