package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&Guest{}, &RSVP{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func TestFindGuestByName(t *testing.T) {
	db := openTestDB(t)

	seeded := Guest{FirstName: "Maria", LastName: "Santos", Enabled: true, IsInc: true}
	if err := db.Create(&seeded).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	cases := []struct {
		name      string
		first     string
		last      string
		wantFound bool
	}{
		{"exact match", "Maria", "Santos", true},
		{"case-insensitive", "mARIA", "sanTOS", true},
		{"surrounding whitespace", "  Maria ", " Santos  ", true},
		{"unknown name", "Mario", "Santos", false},
		{"partial name does not match", "Mari", "Santos", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			guest, err := FindGuestByName(db, tc.first, tc.last)
			if err != nil {
				t.Fatalf("FindGuestByName: %v", err)
			}
			if tc.wantFound {
				if guest == nil {
					t.Fatal("expected a guest, got nil")
				}
				if guest.ID != seeded.ID {
					t.Errorf("got guest %s, want %s", guest.ID, seeded.ID)
				}
				if !guest.IsInc {
					t.Error("expected IsInc to be preserved")
				}
			} else if guest != nil {
				t.Errorf("expected no guest, got %s", guest.ID)
			}
		})
	}
}

func TestNameTakenChecks(t *testing.T) {
	db := openTestDB(t)

	if err := db.Create(&Guest{FirstName: "Ana", LastName: "Reyes", Enabled: true}).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	if err := db.Create(&RSVP{FirstName: "Ben", LastName: "Cruz", Email: "ben@example.com", Attending: true, AttendanceType: AttendanceBoth}).Error; err != nil {
		t.Fatalf("seed rsvp: %v", err)
	}

	taken, err := GuestNameTaken(db, "ANA", "reyes")
	if err != nil || !taken {
		t.Errorf("GuestNameTaken(ANA, reyes) = %v, %v; want true, nil", taken, err)
	}

	taken, err = GuestNameTaken(db, "Ben", "Cruz")
	if err != nil || taken {
		t.Errorf("GuestNameTaken(Ben, Cruz) = %v, %v; want false, nil", taken, err)
	}

	taken, err = RSVPNameTaken(db, " ben ", "CRUZ")
	if err != nil || !taken {
		t.Errorf("RSVPNameTaken(ben, CRUZ) = %v, %v; want true, nil", taken, err)
	}

	taken, err = RSVPNameTaken(db, "Ana", "Reyes")
	if err != nil || taken {
		t.Errorf("RSVPNameTaken(Ana, Reyes) = %v, %v; want false, nil", taken, err)
	}
}

func TestValidAttendanceType(t *testing.T) {
	for _, valid := range []string{AttendanceChurch, AttendanceReception, AttendanceBoth} {
		if !ValidAttendanceType(valid) {
			t.Errorf("ValidAttendanceType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "all", "Church", "banquet"} {
		if ValidAttendanceType(invalid) {
			t.Errorf("ValidAttendanceType(%q) = true, want false", invalid)
		}
	}
}
