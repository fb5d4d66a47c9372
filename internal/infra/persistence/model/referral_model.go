package model

import "time"

// ReferralEdgeModel is the GORM-specific struct for the 'referrals' table.
// ID is "{referrerUid}_{referredUid}", so one edge per ordered pair is enforced by the primary key.
type ReferralEdgeModel struct {
	ID             string     `gorm:"type:varchar(257);primaryKey"`
	ReferrerUID    string     `gorm:"type:varchar(128);not null;index:idx_referrals_referrer_created,priority:1"`
	ReferredUID    string     `gorm:"type:varchar(128);not null;index"`
	ReferrerCode   string     `gorm:"type:varchar(16);not null"`
	Status         string     `gorm:"type:varchar(16);not null"`
	LoopBonusGiven bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time  `gorm:"index:idx_referrals_referrer_created,priority:2"`
	ConfirmedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralEdgeModel) TableName() string {
	return "referrals"
}
