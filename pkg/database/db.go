package database

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ScheduleDocument represents the schedule_documents table: one whole-state
// snapshot per row, newest row wins on load.
type ScheduleDocument struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Payload   string    `gorm:"not null" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// keepDocuments bounds the snapshot history retained after each save
const keepDocuments = 30

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "clinic.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&ScheduleDocument{})

	return db
}

// SaveSnapshot appends a new snapshot document and prunes the history down
// to the newest keepDocuments rows.
func SaveSnapshot(db *gorm.DB, snap *models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := db.Create(&ScheduleDocument{Payload: string(payload)}).Error; err != nil {
		return err
	}

	keep := db.Model(&ScheduleDocument{}).Select("id").Order("id desc").Limit(keepDocuments)
	return db.Where("id NOT IN (?)", keep).Delete(&ScheduleDocument{}).Error
}

// LoadLatest reads the newest snapshot document, or nil when the store is
// empty. Older documents are ignored.
func LoadLatest(db *gorm.DB) (*models.Snapshot, error) {
	var doc ScheduleDocument
	if err := db.Order("id desc").First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(doc.Payload), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
