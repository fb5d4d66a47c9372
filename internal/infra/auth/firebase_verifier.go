package auth

import (
	"context"

	"waitlist/internal/domain/constants"
	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

// firebaseVerifier checks Firebase ID tokens against the project's signing keys.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates the ID token and extracts the identity.
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidIdentityToken, err.Error())
	}

	return identityFromFirebaseToken(decoded), nil
}

func identityFromFirebaseToken(token *firebaseauth.Token) *entity.Identity {
	email, _ := token.Claims["email"].(string)

	return &entity.Identity{
		UID:          token.UID,
		Email:        email,
		GoogleLinked: token.Firebase.SignInProvider == constants.SignInProviderGoogle,
	}
}
