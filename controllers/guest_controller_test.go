package controllers

import (
	"net/http"
	"testing"

	"wedding-backend/database"
	"wedding-backend/models"
)

func TestCreateGuest(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedGuest(t, "Existing", "Guest", true, false)
	seedRSVP(t, models.RSVP{FirstName: "Already", LastName: "Responded", Email: "a@x.co", Attending: true})

	cases := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name:       "created",
			body:       map[string]interface{}{"first_name": "New", "last_name": "Invitee"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing last name",
			body:       map[string]interface{}{"first_name": "Solo", "last_name": "  "},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "collides with guest list",
			body:       map[string]interface{}{"first_name": "EXISTING", "last_name": "guest"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "collides with an RSVP",
			body:       map[string]interface{}{"first_name": "already", "last_name": "RESPONDED"},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/admin/guests", tc.body)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}

	// New guests are enabled by default.
	guest, err := models.FindGuestByName(database.DB, "New", "Invitee")
	if err != nil || guest == nil {
		t.Fatalf("created guest not found: %v", err)
	}
	if !guest.Enabled {
		t.Error("created guest is not enabled")
	}
}

func TestUpdateGuestTogglesFlags(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	guest := seedGuest(t, "Flip", "Flags", true, false)

	w := doRaw(t, r, http.MethodPut, "/api/admin/guests/"+guest.ID,
		`{"enabled": false, "is_inc": true, "bogus": 1}`)
	mustStatus(t, w, http.StatusOK)

	var got models.Guest
	if err := database.DB.First(&got, "id = ?", guest.ID).Error; err != nil {
		t.Fatalf("fetch guest: %v", err)
	}
	if got.Enabled || !got.IsInc {
		t.Errorf("flags = enabled=%v is_inc=%v, want enabled=false is_inc=true", got.Enabled, got.IsInc)
	}
}

func TestImportGuestsBatchSemantics(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	body := "first_name,last_name\nJohn,Doe\n,Smith\nJohn,Doe"
	w := doRaw(t, r, http.MethodPost, "/api/admin/guests/import", body)
	mustStatus(t, w, http.StatusOK)

	var result ImportResult
	decodeBody(t, w, &result)

	// Header skipped; John,Doe imported; ,Smith invalid; second John,Doe is a
	// duplicate of the first and is skipped silently.
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}
	if len(result.Errors) != 1 {
		t.Errorf("errors = %v, want exactly one entry", result.Errors)
	}
}

func TestImportGuestsWithoutHeader(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doRaw(t, r, http.MethodPost, "/api/admin/guests/import", "Ann,Lee\nBob,Ray\n")
	mustStatus(t, w, http.StatusOK)

	var result ImportResult
	decodeBody(t, w, &result)
	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("imported=%d skipped=%d, want 2/0", result.Imported, result.Skipped)
	}
}

func TestImportGuestsQuotedFieldsAndExistingRows(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedGuest(t, "Pat", "Chua", true, false)
	seedRSVP(t, models.RSVP{FirstName: "Rio", LastName: "Velasco", Email: "rio@x.co", Attending: true})

	body := "\"Mary Jane\",\"dela Cruz\"\nPat,Chua\nRio,Velasco\n"
	w := doRaw(t, r, http.MethodPost, "/api/admin/guests/import", body)
	mustStatus(t, w, http.StatusOK)

	var result ImportResult
	decodeBody(t, w, &result)

	// Quoted names import; rows colliding with either table are skipped
	// without an error entry.
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want none", result.Errors)
	}

	guest, err := models.FindGuestByName(database.DB, "Mary Jane", "dela Cruz")
	if err != nil || guest == nil {
		t.Fatalf("quoted-name guest not imported: %v", err)
	}
}

func TestGuestsPaginationAndSearch(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	for _, name := range []string{"Alba", "Bravo", "Cruz", "Diaz"} {
		seedGuest(t, name, "Family", true, false)
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/guests?page=1&page_size=2&sort=first_name&direction=asc", nil)
	mustStatus(t, w, http.StatusOK)

	var resp struct {
		Data          []models.Guest `json:"data"`
		TotalFiltered int64          `json:"total_filtered"`
	}
	decodeBody(t, w, &resp)
	if resp.TotalFiltered != 4 || len(resp.Data) != 2 {
		t.Fatalf("total=%d page=%d, want 4/2", resp.TotalFiltered, len(resp.Data))
	}
	if resp.Data[0].FirstName != "Cruz" || resp.Data[1].FirstName != "Diaz" {
		t.Errorf("page = [%s, %s], want [Cruz, Diaz]", resp.Data[0].FirstName, resp.Data[1].FirstName)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/guests?search=ruz", nil)
	mustStatus(t, w, http.StatusOK)
	decodeBody(t, w, &resp)
	if resp.TotalFiltered != 1 || resp.Data[0].FirstName != "Cruz" {
		t.Errorf("search=ruz got total=%d, want the single Cruz row", resp.TotalFiltered)
	}
}

func TestDeleteGuest(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	guest := seedGuest(t, "Gone", "Soon", true, false)
	w := doJSON(t, r, http.MethodDelete, "/api/admin/guests/"+guest.ID, nil)
	mustStatus(t, w, http.StatusOK)

	got, err := models.FindGuestByName(database.DB, "Gone", "Soon")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != nil {
		t.Error("guest still present after delete")
	}
}
