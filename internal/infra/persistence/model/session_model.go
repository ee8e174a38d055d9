package model

import "time"

// SessionModel mirrors the 'sessions' table. The opaque token is the
// primary key; there is nothing to decode inside it.
type SessionModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
