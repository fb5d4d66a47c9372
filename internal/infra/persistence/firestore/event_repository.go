package firestore

import (
	"context"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type eventDoc struct {
	UID       *string           `firestore:"uid"`
	Type      string            `firestore:"type"`
	Metadata  map[string]string `firestore:"metadata"`
	RequestID string            `firestore:"requestId,omitempty"`
	CreatedAt time.Time         `firestore:"createdAt"`
}

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	docStore
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{docStore{client: client}}
}

// Append creates events/{id}; a redelivered id is ignored.
func (repo *eventRepository) Append(ctx context.Context, event *entity.AuditEvent) error {
	ref := repo.client.Collection(eventsCollection).Doc(event.ID.String())
	doc := fromEventDomain(event)

	if repo.tx != nil {
		return errors.Wrap(repo.tx.Create(ref, doc), "failed to append audit event")
	}

	_, err := ref.Create(ctx, doc)
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}

	return errors.Wrap(err, "failed to append audit event")
}

func fromEventDomain(event *entity.AuditEvent) *eventDoc {
	return &eventDoc{
		UID:       event.UID,
		Type:      string(event.Type),
		Metadata:  event.Metadata,
		RequestID: event.RequestID,
		CreatedAt: event.CreatedAt,
	}
}
