package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"presence/internal/domain/platform"
	"presence/internal/infrastructure/persistence/models"
	"presence/internal/shared/db"
	"presence/internal/shared/logger"
)

// PlatformRepository implements platform.Repository on gorm.
type PlatformRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(database *gorm.DB, log logger.Interface) platform.Repository {
	return &PlatformRepository{
		db:     database,
		logger: log,
	}
}

// ResolveNames maps platform names to plids. Unknown names are absent from
// the result.
func (r *PlatformRepository) ResolveNames(ctx context.Context, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	var platformModels []*models.PlatformInfoModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("platform_name IN ?", names).
		Find(&platformModels).Error; err != nil {
		r.logger.Errorw("failed to resolve platform names", "names", names, "error", err)
		return nil, fmt.Errorf("failed to resolve platform names: %w", err)
	}

	resolved := make(map[string]string, len(platformModels))
	for _, model := range platformModels {
		resolved[model.PlatformName] = model.PLID
	}

	return resolved, nil
}

// GetByPLID retrieves a platform by its plid
func (r *PlatformRepository) GetByPLID(ctx context.Context, plid string) (*platform.Platform, error) {
	var model models.PlatformInfoModel

	if err := db.GetTxFromContext(ctx, r.db).Where("plid = ?", plid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get platform by plid", "plid", plid, "error", err)
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	return &platform.Platform{PLID: model.PLID, Name: model.PlatformName}, nil
}

// Seed inserts the given platforms with insert-ignore semantics. The unique
// index on platform_name keeps restarts and concurrent first runs from
// duplicating rows.
func (r *PlatformRepository) Seed(ctx context.Context, platforms []platform.Platform) error {
	if len(platforms) == 0 {
		return nil
	}

	platformModels := make([]models.PlatformInfoModel, 0, len(platforms))
	for _, p := range platforms {
		platformModels = append(platformModels, models.PlatformInfoModel{
			PLID:         p.PLID,
			PlatformName: p.Name,
		})
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&platformModels).Error; err != nil {
		r.logger.Errorw("failed to seed platforms", "error", err)
		return fmt.Errorf("failed to seed platforms: %w", err)
	}

	return nil
}
