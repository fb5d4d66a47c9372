// Package firestore implements the persistence layer on Cloud Firestore.
//
// Layout: users/{uid}, referrals/{referrerUid_referredUid}, events/{id}, plus the
// index documents usernames/{username} and referralCodes/{code} that make
// uniqueness checks part of the same transaction as the profile write.
package firestore

import (
	"context"
	"log/slog"

	"waitlist/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

const (
	usersCollection         = "users"
	referralsCollection     = "referrals"
	eventsCollection        = "events"
	usernamesCollection     = "usernames"
	referralCodesCollection = "referralCodes"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client and closes it on shutdown
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
