package postgres

import (
	"context"

	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the edge with ON CONFLICT DO NOTHING on its deterministic key.
func (repo *referralRepository) CreateIfAbsent(ctx context.Context, edge *entity.ReferralEdge) (bool, error) {
	edgeM := fromReferralDomain(edge)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edgeM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create referral edge")
	}

	return result.RowsAffected == 1, nil
}

// FindByID retrieves an edge by its deterministic key.
func (repo *referralRepository) FindByID(ctx context.Context, id string) (*entity.ReferralEdge, error) {
	var edgeM model.ReferralEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&edgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral edge")
	}

	return toReferralDomain(&edgeM), nil
}

// MarkLoopBonusGiven flips the flag with a conditional UPDATE; only one caller can win.
func (repo *referralRepository) MarkLoopBonusGiven(ctx context.Context, id string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralEdgeModel{}).
		Where("id = ? AND loop_bonus_given = ?", id, false).
		Update("loop_bonus_given", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark loop bonus")
	}

	if result.RowsAffected == 1 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralEdgeModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check referral edge")
	}
	if count == 0 {
		return false, repository.ErrReferralNotFound
	}

	return false, nil
}

// ListByReferrer returns the edges created by a referrer, newest first.
func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerUID string) ([]*entity.ReferralEdge, error) {
	var edgeModels []*model.ReferralEdgeModel

	if err := repo.db.WithContext(ctx).
		Where("referrer_uid = ?", referrerUID).
		Order("created_at DESC").
		Find(&edgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referrals by referrer")
	}

	edges := make([]*entity.ReferralEdge, 0, len(edgeModels))
	for _, edgeM := range edgeModels {
		edges = append(edges, toReferralDomain(edgeM))
	}

	return edges, nil
}

func toReferralDomain(data *model.ReferralEdgeModel) *entity.ReferralEdge {
	if data == nil {
		return nil
	}

	return &entity.ReferralEdge{
		ID:             data.ID,
		ReferrerUID:    data.ReferrerUID,
		ReferredUID:    data.ReferredUID,
		ReferrerCode:   data.ReferrerCode,
		Status:         entity.ReferralStatus(data.Status),
		LoopBonusGiven: data.LoopBonusGiven,
		CreatedAt:      data.CreatedAt,
		ConfirmedAt:    data.ConfirmedAt,
	}
}

func fromReferralDomain(data *entity.ReferralEdge) *model.ReferralEdgeModel {
	if data == nil {
		return nil
	}

	return &model.ReferralEdgeModel{
		ID:             data.ID,
		ReferrerUID:    data.ReferrerUID,
		ReferredUID:    data.ReferredUID,
		ReferrerCode:   data.ReferrerCode,
		Status:         data.Status.String(),
		LoopBonusGiven: data.LoopBonusGiven,
		CreatedAt:      data.CreatedAt,
		ConfirmedAt:    data.ConfirmedAt,
	}
}
