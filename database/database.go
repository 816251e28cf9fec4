package database

import (
	"fmt"
	"log"
	"os"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/alerts"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/billing"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/content"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/facilities"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/inventory"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/reports"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&subscription.Plan{},
		&billing.Payment{},
		&billing.PaymentProof{},

		// portal data
		&alerts.Alert{},
		&reports.IncidentReport{},
		&reports.DamageAssessment{},
		&reports.PhotoKey{},
		&facilities.Facility{},
		&facilities.NGO{},
		&inventory.Item{},

		// guideline content
		&content.Page{},
		&content.PageBlock{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
