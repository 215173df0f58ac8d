package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"presence/internal/domain/registration"
	"presence/internal/infrastructure/persistence/mappers"
	"presence/internal/infrastructure/persistence/models"
	"presence/internal/shared/db"
	"presence/internal/shared/logger"
)

// RegistrationRepository implements registration.Repository on gorm. All
// methods honor a transaction carried in the context, so the submit use case
// can run the ordered inserts as one unit of work.
type RegistrationRepository struct {
	db     *gorm.DB
	mapper mappers.RegistrationMapper
	logger logger.Interface
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(database *gorm.DB, log logger.Interface) registration.Repository {
	return &RegistrationRepository{
		db:     database,
		mapper: mappers.NewRegistrationMapper(),
		logger: log,
	}
}

// CreatePersonal inserts a PersonalInfo row and sets the generated pid
func (r *RegistrationRepository) CreatePersonal(ctx context.Context, personal *registration.PersonalInfo) error {
	model := r.mapper.PersonalToModel(personal)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create personal info", "eid", personal.EID, "error", err)
		return fmt.Errorf("failed to create personal info: %w", err)
	}

	personal.PID = model.PID
	r.logger.Infow("created personal info", "pid", model.PID)
	return nil
}

// CreateHotel inserts a HotelInfo row and sets the generated hid
func (r *RegistrationRepository) CreateHotel(ctx context.Context, hotel *registration.HotelInfo) error {
	model := r.mapper.HotelToModel(hotel)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create hotel info", "pid", hotel.PID, "error", err)
		return fmt.Errorf("failed to create hotel info: %w", err)
	}

	hotel.HID = model.HID
	r.logger.Infow("created hotel info", "hid", model.HID)
	return nil
}

// CreateAgency inserts an AgencyInfo row and sets the generated aid
func (r *RegistrationRepository) CreateAgency(ctx context.Context, agency *registration.AgencyInfo) error {
	model := r.mapper.AgencyToModel(agency)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create agency info", "hid", agency.HID, "error", err)
		return fmt.Errorf("failed to create agency info: %w", err)
	}

	agency.AID = model.AID
	r.logger.Infow("created agency info", "aid", model.AID)
	return nil
}

// CreateSocialMedia inserts a SocialMediaInfo row and sets the generated sid
func (r *RegistrationRepository) CreateSocialMedia(ctx context.Context, entry *registration.SocialMediaInfo) error {
	model := r.mapper.SocialMediaToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create social media info", "hid", entry.HID, "plid", entry.PLID, "error", err)
		return fmt.Errorf("failed to create social media info: %w", err)
	}

	entry.SID = model.SID
	r.logger.Infow("created social media info", "sid", model.SID, "plid", entry.PLID)
	return nil
}

// ExistsByPersonalEmail checks whether a personal record already uses the email
func (r *RegistrationRepository) ExistsByPersonalEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "personal_email = ?", email)
}

// ExistsByEID checks whether a personal record already uses the employee id
func (r *RegistrationRepository) ExistsByEID(ctx context.Context, eid string) (bool, error) {
	return r.exists(ctx, "eid = ?", eid)
}

// ExistsByPersonalPhone checks whether a personal record already uses the phone
func (r *RegistrationRepository) ExistsByPersonalPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "personal_phone = ?", phone)
}

func (r *RegistrationRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PersonalInfoModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check personal info existence", "query", query, "error", err)
		return false, fmt.Errorf("failed to check personal info existence: %w", err)
	}
	return count > 0, nil
}

// GetPersonalByEID retrieves a personal record by employee id
func (r *RegistrationRepository) GetPersonalByEID(ctx context.Context, eid string) (*registration.PersonalInfo, error) {
	var model models.PersonalInfoModel

	if err := db.GetTxFromContext(ctx, r.db).Where("eid = ?", eid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get personal info by eid", "eid", eid, "error", err)
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}

	return r.mapper.PersonalToEntity(&model), nil
}

// GetHotelByPID retrieves the hotel owned by a personal record
func (r *RegistrationRepository) GetHotelByPID(ctx context.Context, pid uint) (*registration.HotelInfo, error) {
	var model models.HotelInfoModel

	if err := db.GetTxFromContext(ctx, r.db).Where("pid = ?", pid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get hotel info by pid", "pid", pid, "error", err)
		return nil, fmt.Errorf("failed to get hotel info: %w", err)
	}

	return r.mapper.HotelToEntity(&model), nil
}

// GetAgencyByHID retrieves the agency for a hotel, if one exists
func (r *RegistrationRepository) GetAgencyByHID(ctx context.Context, hid uint) (*registration.AgencyInfo, error) {
	var model models.AgencyInfoModel

	if err := db.GetTxFromContext(ctx, r.db).Where("hid = ?", hid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get agency info by hid", "hid", hid, "error", err)
		return nil, fmt.Errorf("failed to get agency info: %w", err)
	}

	return r.mapper.AgencyToEntity(&model), nil
}

// ListSocialMediaByHID retrieves all platform entries for a hotel
func (r *RegistrationRepository) ListSocialMediaByHID(ctx context.Context, hid uint) ([]*registration.SocialMediaInfo, error) {
	var socialModels []*models.SocialMediaInfoModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("hid = ?", hid).
		Order("sid").
		Find(&socialModels).Error; err != nil {
		r.logger.Errorw("failed to list social media info by hid", "hid", hid, "error", err)
		return nil, fmt.Errorf("failed to list social media info: %w", err)
	}

	entries := make([]*registration.SocialMediaInfo, 0, len(socialModels))
	for _, model := range socialModels {
		entries = append(entries, r.mapper.SocialMediaToEntity(model))
	}

	return entries, nil
}
