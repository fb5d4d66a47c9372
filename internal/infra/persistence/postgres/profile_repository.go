package postgres

import (
	"context"
	"strings"

	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile. The primary key and the unique indexes on
// username and referral_code reject concurrent duplicates.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if hint, ok := uniqueViolation(err); ok {
			switch {
			case strings.Contains(hint, constraintUsername):
				return repository.ErrUsernameTaken
			case strings.Contains(hint, constraintReferralCode):
				return repository.ErrReferralCodeTaken
			default:
				return repository.ErrProfileAlreadyExists
			}
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUID retrieves a profile by its identity key.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by uid")
	}

	return toProfileDomain(&profileM), nil
}

// FindByReferralCode retrieves the profile that owns a referral code.
func (repo *profileRepository) FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("referral_code = ?", code).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by referral code")
	}

	return toProfileDomain(&profileM), nil
}

// ExistsUsername reports whether a lowercase username is in use.
func (repo *profileRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// ExistsReferralCode reports whether a referral code is in use.
func (repo *profileRepository) ExistsReferralCode(ctx context.Context, code string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("referral_code = ?", code).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check referral code")
	}

	return count > 0, nil
}

// IncrementPoints adds amount to the source column and to points_total in one UPDATE,
// so concurrent increments never lose writes and the total never drifts.
func (repo *profileRepository) IncrementPoints(ctx context.Context, uid string, field entity.PointsField, amount int64) error {
	column, err := pointsColumn(field)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			column:         gorm.Expr(column+" + ?", amount),
			"points_total": gorm.Expr("points_total + ?", amount),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ListActive returns all active profiles ordered by creation time, then uid.
func (repo *profileRepository) ListActive(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.ProfileStatusActive.String()).
		Order("created_at ASC").
		Order("uid ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active profiles")
	}

	return toProfileDomains(profileModels), nil
}

// FindUsernamesByUIDs maps uids to usernames; unknown uids are omitted.
func (repo *profileRepository) FindUsernamesByUIDs(ctx context.Context, uids []string) (map[string]string, error) {
	usernames := make(map[string]string, len(uids))
	if len(uids) == 0 {
		return usernames, nil
	}

	var rows []struct {
		UID      string
		Username string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Select("uid", "username").
		Where("uid IN ?", uids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find usernames by uids")
	}

	for _, row := range rows {
		usernames[row.UID] = row.Username
	}

	return usernames, nil
}

// FindInconsistentPoints returns profiles whose total differs from the sum of its sources.
func (repo *profileRepository) FindInconsistentPoints(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("points_total <> points_from_signup + points_from_referrals + points_from_loops").
		Order("uid ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inconsistent profiles")
	}

	return toProfileDomains(profileModels), nil
}

func pointsColumn(field entity.PointsField) (string, error) {
	switch field {
	case entity.PointsFromSignup:
		return "points_from_signup", nil
	case entity.PointsFromReferrals:
		return "points_from_referrals", nil
	case entity.PointsFromLoops:
		return "points_from_loops", nil
	default:
		return "", errors.Errorf("unknown points field: %s", field)
	}
}

func toProfileDomains(profileModels []*model.ProfileModel) []*entity.UserProfile {
	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

func toProfileDomain(data *model.ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UID:            data.UID,
		Email:          data.Email,
		GoogleLinked:   data.GoogleLinked,
		Username:       data.Username,
		TelegramHandle: data.TelegramHandle,
		TelegramLinked: data.TelegramLinked,
		ReferralCode:   data.ReferralCode,
		ReferredByCode: data.ReferredByCode,
		ReferredByUID:  data.ReferredByUID,
		Points: entity.Points{
			Total:         data.PointsTotal,
			FromSignup:    data.PointsFromSignup,
			FromReferrals: data.PointsFromReferrals,
			FromLoops:     data.PointsFromLoops,
		},
		Status:           entity.ProfileStatus(data.Status),
		WaitlistPosition: data.WaitlistPosition,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UID:                 data.UID,
		Email:               data.Email,
		GoogleLinked:        data.GoogleLinked,
		Username:            data.Username,
		TelegramHandle:      data.TelegramHandle,
		TelegramLinked:      data.TelegramLinked,
		ReferralCode:        data.ReferralCode,
		ReferredByCode:      data.ReferredByCode,
		ReferredByUID:       data.ReferredByUID,
		PointsTotal:         data.Points.Total,
		PointsFromSignup:    data.Points.FromSignup,
		PointsFromReferrals: data.Points.FromReferrals,
		PointsFromLoops:     data.Points.FromLoops,
		Status:              data.Status.String(),
		WaitlistPosition:    data.WaitlistPosition,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
