package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/shivamstore/storefront/config"
	"github.com/shivamstore/storefront/database/model"
	"github.com/shivamstore/storefront/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// ErrNotFound is returned by services when a row does not exist, and by
// gorm lookups; IsNotFound matches both.
var ErrNotFound = gorm.ErrRecordNotFound

// Seeded panel credential, also the target of `setting reset`.
const (
	DefaultAdminEmail    = "admin@shivam.com"
	DefaultAdminPassword = "admin123"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Admin{},
		&model.Category{},
		&model.SubCategory{},
		&model.Product{},
		&model.Order{},
		&model.OrderLine{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the panel credential on first startup. The password
// is stored as a bcrypt hash, unlike the raw default the table name
// might suggest.
func initAdmin() error {
	empty, err := isTableEmpty("admins")
	if err != nil {
		log.Printf("Error checking if admins table is empty: %v", err)
		return err
	}
	if empty {
		hash, err := crypto.HashPasswordAsBcrypt(DefaultAdminPassword)
		if err != nil {
			return err
		}
		admin := &model.Admin{
			Email:    DefaultAdminEmail,
			Password: hash,
		}
		return db.Create(admin).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initAdmin(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation,
// e.g. registering an email that is already taken.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Checkpoint flushes the sqlite WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
