package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditEventModel is the GORM-specific struct for the append-only 'events' table.
type AuditEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UID       *string   `gorm:"type:varchar(128);index"`
	Type      string    `gorm:"type:varchar(32);not null;index"`
	Metadata  datatypes.JSONType[map[string]string]
	RequestID string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditEventModel) TableName() string {
	return "events"
}

// All lists the models migrated at startup.
func All() []any {
	return []any{
		&ProfileModel{},
		&ReferralEdgeModel{},
		&AuditEventModel{},
	}
}
