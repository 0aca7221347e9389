package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Item":
		return db.AutoMigrate(Item{})
	}
	return nil
}
