// Package model contains the GORM persistence models mirroring the SQLite
// schema. The schema itself is created by versioned migrations, not by
// AutoMigrate; these structs only describe the tables to GORM.
package model

import "time"

// UserModel mirrors the 'users' table. PasswordHash is empty for OAuth
// accounts; GoogleID/GithubID are empty for local accounts.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Name         string `gorm:"type:varchar(100);not null"`
	Nickname     string `gorm:"type:varchar(100)"`
	Provider     string `gorm:"type:varchar(20);not null;default:local"`
	GoogleID     string `gorm:"type:varchar(255)"`
	GithubID     string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
