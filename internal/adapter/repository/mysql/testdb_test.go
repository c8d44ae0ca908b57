package mysql

import (
	"path/filepath"
	"testing"
	"time"

	brDomain "rentify-backend/internal/domain/borrowrequest"
	favDomain "rentify-backend/internal/domain/favorite"
	historyDomain "rentify-backend/internal/domain/history"
	itemDomain "rentify-backend/internal/domain/item"
	principalDomain "rentify-backend/internal/domain/principal"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a file-backed sqlite DB so every pooled connection sees the
// same data. Immediate transactions make concurrent writers queue on BEGIN,
// standing in for MySQL's row locks.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "rentify.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&itemDomain.Item{},
		&principalDomain.User{},
		&principalDomain.Lender{},
		&principalDomain.Staff{},
		&brDomain.BorrowRequest{},
		&historyDomain.Record{},
		&favDomain.Favorite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func strp(s string) *string { return &s }

func seedItem(t *testing.T, db *gorm.DB, name, status string) *itemDomain.Item {
	t.Helper()
	it := &itemDomain.Item{Name: name, Description: name + " desc", AvailabilityStatus: status, LenderID: 1}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return it
}

func seedUser(t *testing.T, db *gorm.DB, username string) *principalDomain.User {
	t.Helper()
	u := &principalDomain.User{Username: username, FullName: username + " full", Email: username + "@x.io", Role: "User", PasswordHash: strp("pw")}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedLender(t *testing.T, db *gorm.DB, username string) *principalDomain.Lender {
	t.Helper()
	l := &principalDomain.Lender{Username: username, FullName: username + " full", Role: "Owner", PasswordHash: strp("pw")}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed lender: %v", err)
	}
	return l
}

func seedRequest(t *testing.T, db *gorm.DB, itemID, borrowerID, lenderID uint64, status brDomain.Status) *brDomain.BorrowRequest {
	t.Helper()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	r := &brDomain.BorrowRequest{
		ItemID:         itemID,
		BorrowerID:     borrowerID,
		LenderID:       lenderID,
		Status:         status,
		BorrowerReason: "need it",
		BorrowDate:     &day,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return r
}
