package firestore

import (
	"context"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"

	"cloud.google.com/go/firestore"
)

type referralDoc struct {
	ReferrerUID    string     `firestore:"referrerUid"`
	ReferredUID    string     `firestore:"referredUid"`
	ReferrerCode   string     `firestore:"referrerCode"`
	Status         string     `firestore:"status"`
	LoopBonusGiven bool       `firestore:"loopBonusGiven"`
	CreatedAt      time.Time  `firestore:"createdAt"`
	ConfirmedAt    *time.Time `firestore:"confirmedAt"`
}

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	docStore
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(client *firestore.Client) repository.ReferralRepository {
	return &referralRepository{docStore{client: client}}
}

func (repo *referralRepository) edgeRef(id string) *firestore.DocumentRef {
	return repo.client.Collection(referralsCollection).Doc(id)
}

// CreateIfAbsent creates referrals/{id} unless it already exists.
func (repo *referralRepository) CreateIfAbsent(ctx context.Context, edge *entity.ReferralEdge) (bool, error) {
	ref := repo.edgeRef(edge.ID)
	created := false

	err := repo.write(ctx, func(tx *firestore.Transaction) error {
		created = false

		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return errors.Wrap(err, "failed to read referral edge")
		}
		if err == nil && snap.Exists() {
			return nil
		}

		if err := tx.Create(ref, fromReferralDomain(edge)); err != nil {
			return errors.Wrap(err, "failed to create referral edge")
		}
		created = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// FindByID retrieves an edge by its deterministic key.
func (repo *referralRepository) FindByID(ctx context.Context, id string) (*entity.ReferralEdge, error) {
	snap, exists, err := repo.get(ctx, repo.edgeRef(id))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrReferralNotFound
	}

	return decodeReferral(snap)
}

// MarkLoopBonusGiven reads the flag and sets it in the same transaction, so
// concurrent callers conflict and only one of them commits the flip.
func (repo *referralRepository) MarkLoopBonusGiven(ctx context.Context, id string) (bool, error) {
	ref := repo.edgeRef(id)
	flipped := false

	err := repo.write(ctx, func(tx *firestore.Transaction) error {
		flipped = false

		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return repository.ErrReferralNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to read referral edge")
		}

		given, err := snap.DataAt("loopBonusGiven")
		if err == nil {
			if b, ok := given.(bool); ok && b {
				return nil
			}
		}

		if err := tx.Update(ref, []firestore.Update{{Path: "loopBonusGiven", Value: true}}); err != nil {
			return errors.Wrap(err, "failed to mark loop bonus")
		}
		flipped = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return flipped, nil
}

// ListByReferrer returns the edges created by a referrer, newest first.
func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerUID string) ([]*entity.ReferralEdge, error) {
	q := repo.client.Collection(referralsCollection).
		Where("referrerUid", "==", referrerUID).
		OrderBy("createdAt", firestore.Desc)

	snaps, err := repo.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals by referrer")
	}

	edges := make([]*entity.ReferralEdge, 0, len(snaps))
	for _, snap := range snaps {
		edge, err := decodeReferral(snap)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	return edges, nil
}

func decodeReferral(snap *firestore.DocumentSnapshot) (*entity.ReferralEdge, error) {
	var doc referralDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode referral edge %s", snap.Ref.ID)
	}

	return toReferralDomain(snap.Ref.ID, &doc), nil
}

func toReferralDomain(id string, doc *referralDoc) *entity.ReferralEdge {
	return &entity.ReferralEdge{
		ID:             id,
		ReferrerUID:    doc.ReferrerUID,
		ReferredUID:    doc.ReferredUID,
		ReferrerCode:   doc.ReferrerCode,
		Status:         entity.ReferralStatus(doc.Status),
		LoopBonusGiven: doc.LoopBonusGiven,
		CreatedAt:      doc.CreatedAt,
		ConfirmedAt:    doc.ConfirmedAt,
	}
}

func fromReferralDomain(edge *entity.ReferralEdge) *referralDoc {
	return &referralDoc{
		ReferrerUID:    edge.ReferrerUID,
		ReferredUID:    edge.ReferredUID,
		ReferrerCode:   edge.ReferrerCode,
		Status:         edge.Status.String(),
		LoopBonusGiven: edge.LoopBonusGiven,
		CreatedAt:      edge.CreatedAt,
		ConfirmedAt:    edge.ConfirmedAt,
	}
}
