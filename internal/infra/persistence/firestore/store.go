package firestore

import (
	"context"
	"strings"

	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// docStore routes reads and writes through a transaction when one is bound.
// Firestore requires every read in a transaction to happen before the first write;
// each repository method does its reads first and callers order methods accordingly.
type docStore struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// get reads a document; a missing document is reported as exists=false.
func (s docStore) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, bool, error) {
	var (
		snap *firestore.DocumentSnapshot
		err  error
	)
	if s.tx != nil {
		snap, err = s.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}

	if isNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to get %s", ref.Path)
	}

	return snap, snap.Exists(), nil
}

// getAll reads several documents; missing ones come back with Exists() == false.
func (s docStore) getAll(ctx context.Context, refs []*firestore.DocumentRef) ([]*firestore.DocumentSnapshot, error) {
	var (
		snaps []*firestore.DocumentSnapshot
		err   error
	)
	if s.tx != nil {
		snaps, err = s.tx.GetAll(refs)
	} else {
		snaps, err = s.client.GetAll(ctx, refs)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get documents")
	}

	return snaps, nil
}

// query runs q inside the bound transaction if any.
func (s docStore) query(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	var iter *firestore.DocumentIterator
	if s.tx != nil {
		iter = s.tx.Documents(q)
	} else {
		iter = q.Documents(ctx)
	}

	snaps, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to run query")
	}

	return snaps, nil
}

// write runs fn in the bound transaction, or in a fresh one.
func (s docStore) write(ctx context.Context, fn func(tx *firestore.Transaction) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	return translateError(s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(tx)
	}))
}

// translateError maps commit-time gRPC failures onto repository errors.
// Updates only target users and edges that were read earlier in the same
// transaction, so a NotFound at commit means the profile being credited is gone.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(errors.Cause(err)) {
	case codes.NotFound:
		return repository.ErrProfileNotFound
	case codes.AlreadyExists:
		return repository.ErrProfileAlreadyExists
	default:
		return err
	}
}

func isNotFound(err error) bool {
	return err != nil && status.Code(errors.Cause(err)) == codes.NotFound
}

// validDocID reports whether id can name a document. Lookups by an id that
// fails this check cannot match anything.
func validDocID(id string) bool {
	if id == "" || id == "." || id == ".." || len(id) > 1500 || strings.Contains(id, "/") {
		return false
	}

	return !strings.HasPrefix(id, "__") || !strings.HasSuffix(id, "__")
}
