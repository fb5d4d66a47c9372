package postgres

import (
	"context"

	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Append inserts the event; redelivered events with a known id are ignored.
func (repo *eventRepository) Append(ctx context.Context, event *entity.AuditEvent) error {
	eventM := &model.AuditEventModel{
		ID:        event.ID,
		UID:       event.UID,
		Type:      string(event.Type),
		Metadata:  datatypes.NewJSONType(event.Metadata),
		RequestID: event.RequestID,
		CreatedAt: event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit event")
	}

	return nil
}
