package model

import "time"

// ProfileModel is the GORM-specific struct for the 'users' table.
// Usernames are stored lowercase so the unique index is case-insensitive.
type ProfileModel struct {
	UID                 string  `gorm:"type:varchar(128);primaryKey"`
	Email               string  `gorm:"type:varchar(320);not null;default:''"`
	GoogleLinked        bool    `gorm:"not null;default:false"`
	Username            string  `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_username"`
	TelegramHandle      *string `gorm:"type:varchar(64)"`
	TelegramLinked      bool    `gorm:"not null;default:false"`
	ReferralCode        string  `gorm:"type:varchar(16);not null;uniqueIndex:idx_users_referral_code"`
	ReferredByCode      *string `gorm:"type:varchar(16)"`
	ReferredByUID       *string `gorm:"type:varchar(128);index"`
	PointsTotal         int64   `gorm:"not null;default:0"`
	PointsFromSignup    int64   `gorm:"not null;default:0"`
	PointsFromReferrals int64   `gorm:"not null;default:0"`
	PointsFromLoops     int64   `gorm:"not null;default:0"`
	Status              string  `gorm:"type:varchar(16);not null;index:idx_users_status_created,priority:1"`
	WaitlistPosition    *int
	CreatedAt           time.Time `gorm:"index:idx_users_status_created,priority:2"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}
