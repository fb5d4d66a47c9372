package firestore

import (
	"context"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"

	"cloud.google.com/go/firestore"
)

type profileDoc struct {
	UID                 string    `firestore:"uid"`
	Email               string    `firestore:"email"`
	GoogleLinked        bool      `firestore:"googleLinked"`
	Username            string    `firestore:"username"`
	TelegramHandle      *string   `firestore:"telegramHandle"`
	TelegramLinked      bool      `firestore:"telegramLinked"`
	ReferralCode        string    `firestore:"referralCode"`
	ReferredByCode      *string   `firestore:"referredByCode"`
	ReferredByUID       *string   `firestore:"referredByUid"`
	PointsTotal         int64     `firestore:"pointsTotal"`
	PointsFromSignup    int64     `firestore:"pointsFromSignup"`
	PointsFromReferrals int64     `firestore:"pointsFromReferrals"`
	PointsFromLoops     int64     `firestore:"pointsFromLoops"`
	Status              string    `firestore:"status"`
	WaitlistPosition    *int      `firestore:"waitlistPosition"`
	CreatedAt           time.Time `firestore:"createdAt"`
	UpdatedAt           time.Time `firestore:"updatedAt"`
}

// indexDoc backs usernames/{username} and referralCodes/{code}.
type indexDoc struct {
	UID string `firestore:"uid"`
}

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	docStore
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{docStore{client: client}}
}

func (repo *profileRepository) userRef(uid string) *firestore.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(uid)
}

func (repo *profileRepository) usernameRef(username string) *firestore.DocumentRef {
	return repo.client.Collection(usernamesCollection).Doc(username)
}

func (repo *profileRepository) referralCodeRef(code string) *firestore.DocumentRef {
	return repo.client.Collection(referralCodesCollection).Doc(code)
}

// Create writes the profile together with its username and referral code index
// documents. All three are checked and created in one transaction.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	userRef := repo.userRef(profile.UID)
	usernameRef := repo.usernameRef(profile.Username)
	codeRef := repo.referralCodeRef(profile.ReferralCode)

	return repo.write(ctx, func(tx *firestore.Transaction) error {
		snaps, err := tx.GetAll([]*firestore.DocumentRef{userRef, usernameRef, codeRef})
		if err != nil {
			return errors.Wrap(err, "failed to read profile indexes")
		}

		switch {
		case snaps[0].Exists():
			return repository.ErrProfileAlreadyExists
		case snaps[1].Exists():
			return repository.ErrUsernameTaken
		case snaps[2].Exists():
			return repository.ErrReferralCodeTaken
		}

		if err := tx.Create(userRef, fromProfileDomain(profile)); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		if err := tx.Create(usernameRef, indexDoc{UID: profile.UID}); err != nil {
			return errors.Wrap(err, "failed to reserve username")
		}
		if err := tx.Create(codeRef, indexDoc{UID: profile.UID}); err != nil {
			return errors.Wrap(err, "failed to reserve referral code")
		}

		return nil
	})
}

// FindByUID retrieves a profile by its identity key.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, exists, err := repo.get(ctx, repo.userRef(uid))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrProfileNotFound
	}

	return decodeProfile(snap)
}

// FindByReferralCode resolves the code index document, then the profile.
func (repo *profileRepository) FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error) {
	if !validDocID(code) {
		return nil, repository.ErrProfileNotFound
	}

	snap, exists, err := repo.get(ctx, repo.referralCodeRef(code))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrProfileNotFound
	}

	var index indexDoc
	if err := snap.DataTo(&index); err != nil {
		return nil, errors.Wrap(err, "failed to decode referral code index")
	}

	return repo.FindByUID(ctx, index.UID)
}

// ExistsUsername reports whether a lowercase username is in use.
func (repo *profileRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	_, exists, err := repo.get(ctx, repo.usernameRef(username))

	return exists, err
}

// ExistsReferralCode reports whether a referral code is in use.
func (repo *profileRepository) ExistsReferralCode(ctx context.Context, code string) (bool, error) {
	if !validDocID(code) {
		return false, nil
	}

	_, exists, err := repo.get(ctx, repo.referralCodeRef(code))

	return exists, err
}

// IncrementPoints applies server-side increments to the source field and the total
// in a single document update.
func (repo *profileRepository) IncrementPoints(ctx context.Context, uid string, field entity.PointsField, amount int64) error {
	path, err := pointsPath(field)
	if err != nil {
		return err
	}

	return repo.write(ctx, func(tx *firestore.Transaction) error {
		return tx.Update(repo.userRef(uid), []firestore.Update{
			{Path: path, Value: firestore.Increment(amount)},
			{Path: "pointsTotal", Value: firestore.Increment(amount)},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
}

// ListActive returns all active profiles ordered by creation time.
func (repo *profileRepository) ListActive(ctx context.Context) ([]*entity.UserProfile, error) {
	q := repo.client.Collection(usersCollection).
		Where("status", "==", entity.ProfileStatusActive.String()).
		OrderBy("createdAt", firestore.Asc)

	snaps, err := repo.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active profiles")
	}

	return decodeProfiles(snaps)
}

// FindUsernamesByUIDs maps uids to usernames; unknown uids are omitted.
func (repo *profileRepository) FindUsernamesByUIDs(ctx context.Context, uids []string) (map[string]string, error) {
	usernames := make(map[string]string, len(uids))
	if len(uids) == 0 {
		return usernames, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(uids))
	for _, uid := range uids {
		refs = append(refs, repo.userRef(uid))
	}

	snaps, err := repo.getAll(ctx, refs)
	if err != nil {
		return nil, err
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		profile, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		usernames[profile.UID] = profile.Username
	}

	return usernames, nil
}

// FindInconsistentPoints scans every profile; Firestore cannot compare fields in a query.
func (repo *profileRepository) FindInconsistentPoints(ctx context.Context) ([]*entity.UserProfile, error) {
	snaps, err := repo.query(ctx, repo.client.Collection(usersCollection).Query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan profiles")
	}

	profiles, err := decodeProfiles(snaps)
	if err != nil {
		return nil, err
	}

	drifted := make([]*entity.UserProfile, 0)
	for _, profile := range profiles {
		if !profile.Points.Consistent() {
			drifted = append(drifted, profile)
		}
	}

	return drifted, nil
}

func pointsPath(field entity.PointsField) (string, error) {
	switch field {
	case entity.PointsFromSignup:
		return "pointsFromSignup", nil
	case entity.PointsFromReferrals:
		return "pointsFromReferrals", nil
	case entity.PointsFromLoops:
		return "pointsFromLoops", nil
	default:
		return "", errors.Errorf("unknown points field: %s", field)
	}
}

func decodeProfiles(snaps []*firestore.DocumentSnapshot) ([]*entity.UserProfile, error) {
	profiles := make([]*entity.UserProfile, 0, len(snaps))
	for _, snap := range snaps {
		profile, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile %s", snap.Ref.ID)
	}
	if doc.UID == "" {
		doc.UID = snap.Ref.ID
	}

	return toProfileDomain(&doc), nil
}

func toProfileDomain(doc *profileDoc) *entity.UserProfile {
	return &entity.UserProfile{
		UID:            doc.UID,
		Email:          doc.Email,
		GoogleLinked:   doc.GoogleLinked,
		Username:       doc.Username,
		TelegramHandle: doc.TelegramHandle,
		TelegramLinked: doc.TelegramLinked,
		ReferralCode:   doc.ReferralCode,
		ReferredByCode: doc.ReferredByCode,
		ReferredByUID:  doc.ReferredByUID,
		Points: entity.Points{
			Total:         doc.PointsTotal,
			FromSignup:    doc.PointsFromSignup,
			FromReferrals: doc.PointsFromReferrals,
			FromLoops:     doc.PointsFromLoops,
		},
		Status:           entity.ProfileStatus(doc.Status),
		WaitlistPosition: doc.WaitlistPosition,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.UserProfile) *profileDoc {
	return &profileDoc{
		UID:                 profile.UID,
		Email:               profile.Email,
		GoogleLinked:        profile.GoogleLinked,
		Username:            profile.Username,
		TelegramHandle:      profile.TelegramHandle,
		TelegramLinked:      profile.TelegramLinked,
		ReferralCode:        profile.ReferralCode,
		ReferredByCode:      profile.ReferredByCode,
		ReferredByUID:       profile.ReferredByUID,
		PointsTotal:         profile.Points.Total,
		PointsFromSignup:    profile.Points.FromSignup,
		PointsFromReferrals: profile.Points.FromReferrals,
		PointsFromLoops:     profile.Points.FromLoops,
		Status:              profile.Status.String(),
		WaitlistPosition:    profile.WaitlistPosition,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}
}
