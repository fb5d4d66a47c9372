package firestore

import (
	"context"

	"waitlist/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface
// on Firestore's optimistic transactions. fn may run again on contention.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory binds repositories to one Firestore transaction.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// ProfileRepo returns a profile repository bound to the transaction.
func (f *firestoreRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{docStore{client: f.client, tx: f.tx}}
}

// ReferralRepo returns a referral repository bound to the transaction.
func (f *firestoreRepositoryFactory) ReferralRepo() repository.ReferralRepository {
	return &referralRepository{docStore{client: f.client, tx: f.tx}}
}

// EventRepo returns an event repository bound to the transaction.
func (f *firestoreRepositoryFactory) EventRepo() repository.EventRepository {
	return &eventRepository{docStore{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside client.RunTransaction.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{client: tm.client, tx: tx})
	})

	return translateError(err)
}
