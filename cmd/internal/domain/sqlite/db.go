package sqlite

import (
	"scheduler/cmd/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens a process-lifetime in-memory database. The pool is pinned to a
// single connection: sqlite discards an in-memory database once its last
// connection closes, and a single writer keeps the booking commit serialized.
func Init() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Person{}, &entity.Meeting{}, &entity.ScheduleSlot{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}
