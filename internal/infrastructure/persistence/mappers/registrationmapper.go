package mappers

import (
	"presence/internal/domain/registration"
	"presence/internal/infrastructure/persistence/models"
)

// RegistrationMapper handles the conversion between registration domain
// entities and persistence models.
type RegistrationMapper interface {
	PersonalToModel(entity *registration.PersonalInfo) *models.PersonalInfoModel
	PersonalToEntity(model *models.PersonalInfoModel) *registration.PersonalInfo

	HotelToModel(entity *registration.HotelInfo) *models.HotelInfoModel
	HotelToEntity(model *models.HotelInfoModel) *registration.HotelInfo

	AgencyToModel(entity *registration.AgencyInfo) *models.AgencyInfoModel
	AgencyToEntity(model *models.AgencyInfoModel) *registration.AgencyInfo

	SocialMediaToModel(entity *registration.SocialMediaInfo) *models.SocialMediaInfoModel
	SocialMediaToEntity(model *models.SocialMediaInfoModel) *registration.SocialMediaInfo
}

// registrationMapper is the concrete implementation of RegistrationMapper
type registrationMapper struct{}

// NewRegistrationMapper creates a new registration mapper
func NewRegistrationMapper() RegistrationMapper {
	return &registrationMapper{}
}

func (m *registrationMapper) PersonalToModel(entity *registration.PersonalInfo) *models.PersonalInfoModel {
	if entity == nil {
		return nil
	}
	return &models.PersonalInfoModel{
		PID:           entity.PID,
		FirstName:     entity.FirstName,
		LastName:      entity.LastName,
		Title:         entity.Title,
		PersonalEmail: entity.PersonalEmail,
		EID:           entity.EID,
		CountryCode:   entity.CountryCode,
		PersonalPhone: entity.PersonalPhone,
	}
}

func (m *registrationMapper) PersonalToEntity(model *models.PersonalInfoModel) *registration.PersonalInfo {
	if model == nil {
		return nil
	}
	return &registration.PersonalInfo{
		PID:           model.PID,
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		Title:         model.Title,
		PersonalEmail: model.PersonalEmail,
		EID:           model.EID,
		CountryCode:   model.CountryCode,
		PersonalPhone: model.PersonalPhone,
	}
}

func (m *registrationMapper) HotelToModel(entity *registration.HotelInfo) *models.HotelInfoModel {
	if entity == nil {
		return nil
	}
	return &models.HotelInfoModel{
		HID:              entity.HID,
		HotelName:        entity.HotelName,
		MarshaCode:       entity.MarshaCode,
		ManagedFranchise: entity.ManagedFranchise,
		Country:          entity.Country,
		State:            entity.State,
		City:             entity.City,
		ZipCode:          entity.ZipCode,
		PID:              entity.PID,
	}
}

func (m *registrationMapper) HotelToEntity(model *models.HotelInfoModel) *registration.HotelInfo {
	if model == nil {
		return nil
	}
	return &registration.HotelInfo{
		HID:              model.HID,
		HotelName:        model.HotelName,
		MarshaCode:       model.MarshaCode,
		ManagedFranchise: model.ManagedFranchise,
		Country:          model.Country,
		State:            model.State,
		City:             model.City,
		ZipCode:          model.ZipCode,
		PID:              model.PID,
	}
}

func (m *registrationMapper) AgencyToModel(entity *registration.AgencyInfo) *models.AgencyInfoModel {
	if entity == nil {
		return nil
	}
	return &models.AgencyInfoModel{
		AID:            entity.AID,
		AgencyName:     entity.AgencyName,
		PrimaryContact: entity.PrimaryContact,
		PrimaryEmail:   entity.PrimaryEmail,
		PrimaryPhone:   entity.PrimaryPhone,
		NotApplicable:  entity.NotApplicable,
		HID:            entity.HID,
	}
}

func (m *registrationMapper) AgencyToEntity(model *models.AgencyInfoModel) *registration.AgencyInfo {
	if model == nil {
		return nil
	}
	return &registration.AgencyInfo{
		AID:            model.AID,
		AgencyName:     model.AgencyName,
		PrimaryContact: model.PrimaryContact,
		PrimaryEmail:   model.PrimaryEmail,
		PrimaryPhone:   model.PrimaryPhone,
		NotApplicable:  model.NotApplicable,
		HID:            model.HID,
	}
}

func (m *registrationMapper) SocialMediaToModel(entity *registration.SocialMediaInfo) *models.SocialMediaInfoModel {
	if entity == nil {
		return nil
	}
	return &models.SocialMediaInfoModel{
		SID:        entity.SID,
		SMAName:    entity.SMAName,
		SMAPerson:  entity.SMAPerson,
		SMAEmail:   entity.SMAEmail,
		SMAPhone:   entity.SMAPhone,
		PageURL:    entity.PageURL,
		PageID:     entity.PageID,
		MiFBM:      entity.MiFBM,
		AddedDcube: entity.AddedDcube,
		HID:        entity.HID,
		PLID:       entity.PLID,
	}
}

func (m *registrationMapper) SocialMediaToEntity(model *models.SocialMediaInfoModel) *registration.SocialMediaInfo {
	if model == nil {
		return nil
	}
	return &registration.SocialMediaInfo{
		SID:        model.SID,
		SMAName:    model.SMAName,
		SMAPerson:  model.SMAPerson,
		SMAEmail:   model.SMAEmail,
		SMAPhone:   model.SMAPhone,
		PageURL:    model.PageURL,
		PageID:     model.PageID,
		MiFBM:      model.MiFBM,
		AddedDcube: model.AddedDcube,
		HID:        model.HID,
		PLID:       model.PLID,
	}
}
