package model

import "time"

type Otp struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"index; not null"`
	Code      string `gorm:"size:6; not null"`
	ExpiresAt time.Time
	Used      bool `gorm:"default:false"`
	CreatedAt time.Time
}

// Expired reports whether the code is past its expiry. Expiry is only
// ever checked at read time, rows are never actively swept for it.
func (o *Otp) Expired() bool {
	return time.Now().After(o.ExpiresAt)
}
