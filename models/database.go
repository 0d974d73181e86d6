package models

import (
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/appconfig"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// This makes the DB generally available to the application.
// The pool is opened once at process start and shared across request
// handlers; handlers never open their own connections.
var DB *gorm.DB

func InitDatabase() error {
	log.Info("initializing database connection")
	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey so callers can detect signup conflicts.
	db, err := gorm.Open(postgres.Open(appconfig.Get().PgURI()), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&User{}, &Post{}); err != nil {
		return err
	}

	DB = db
	return nil
}
