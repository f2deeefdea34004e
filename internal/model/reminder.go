package model

import "time"

// Reminder is a pending note scheduled for delivery to a Telegram chat.
// A record is created when a message parses, read only by the delivery
// scheduler, and deleted right after delivery. It is never updated.
type Reminder struct {
	ID        uint      `gorm:"primaryKey"`
	ChatID    int64     `gorm:"not null"`
	Note      string    `gorm:"type:text;not null"`
	DueAt     time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
