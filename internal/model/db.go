package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Edit{}); err != nil {
		return err
	}

	return nil
}
