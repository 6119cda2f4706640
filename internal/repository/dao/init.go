package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Organization{},
		&User{},
		&Counter{},
		&EventType{},
		&PositionScore{},
		&Event{},
		&EventRegistration{},
		&RegistrationParticipant{},
		&Result{},
		&WinningRegistration{},
		&Leaderboard{},
	)
}
