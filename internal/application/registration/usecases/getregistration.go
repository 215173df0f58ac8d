package usecases

import (
	"context"
	"fmt"

	"presence/internal/application/registration/dto"
	"presence/internal/domain/platform"
	"presence/internal/domain/registration"
	"presence/internal/infrastructure/crypto"
	"presence/internal/shared/errors"
	"presence/internal/shared/logger"
)

// GetRegistrationUseCase reconstructs a full registration for an employee
// id, decrypting the social-media columns on the way out.
type GetRegistrationUseCase struct {
	regRepo      registration.Repository
	platformRepo platform.Repository
	codec        crypto.Codec
	logger       logger.Interface
}

// NewGetRegistrationUseCase creates a new get registration use case
func NewGetRegistrationUseCase(
	regRepo registration.Repository,
	platformRepo platform.Repository,
	codec crypto.Codec,
	log logger.Interface,
) *GetRegistrationUseCase {
	return &GetRegistrationUseCase{
		regRepo:      regRepo,
		platformRepo: platformRepo,
		codec:        codec,
		logger:       log,
	}
}

// Execute looks up the registration for eid and assembles the nested read
// response. Each social-media entry is decrypted with its own ciphertexts
// and resolved against its own platform id.
func (uc *GetRegistrationUseCase) Execute(ctx context.Context, eid string) (*dto.RegistrationResponse, error) {
	personal, err := uc.regRepo.GetPersonalByEID(ctx, eid)
	if err != nil {
		return nil, err
	}
	if personal == nil {
		uc.logger.Warnw("personal info not found", "eid", eid)
		return nil, errors.NewNotFoundError("PersonalInfo not found.")
	}

	hotel, err := uc.regRepo.GetHotelByPID(ctx, personal.PID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		uc.logger.Errorw("hotel info missing for personal record", "pid", personal.PID)
		return nil, errors.NewNotFoundError("HotelInfo not found.")
	}

	// Absence means the submission marked the agency as not applicable.
	agency, err := uc.regRepo.GetAgencyByHID(ctx, hotel.HID)
	if err != nil {
		return nil, err
	}

	socialEntries, err := uc.regRepo.ListSocialMediaByHID(ctx, hotel.HID)
	if err != nil {
		return nil, err
	}
	if len(socialEntries) == 0 {
		uc.logger.Errorw("no social media info for hotel", "hid", hotel.HID)
		return nil, errors.NewNotFoundError("SocialMediaInfo not found.")
	}

	socialSection, err := uc.buildSocialMediaSection(ctx, socialEntries)
	if err != nil {
		return nil, err
	}

	resp := &dto.RegistrationResponse{
		PersonalInfo: dto.PersonalSection{
			FirstName:     personal.FirstName,
			LastName:      personal.LastName,
			Title:         personal.Title,
			PersonalEmail: personal.PersonalEmail,
			EID:           personal.EID,
			CountryCode:   personal.CountryCode,
			PersonalPhone: personal.PersonalPhone,
		},
		HotelInfo: dto.HotelSection{
			HotelName:        hotel.HotelName,
			MarshaCode:       hotel.MarshaCode,
			ManagedFranchise: hotel.ManagedFranchise,
			Country:          hotel.Country,
			State:            hotel.State,
			City:             hotel.City,
			ZipCode:          hotel.ZipCode,
		},
		AgencyInfo:      buildAgencySection(agency),
		SocialMediaInfo: socialSection,
	}

	uc.logger.Infow("registration retrieved", "eid", eid, "entries", len(socialEntries))
	return resp, nil
}

// buildSocialMediaSection resolves and decrypts every entry. A plid with no
// platform row is corrupted state, not a client error, so it surfaces as an
// internal error.
func (uc *GetRegistrationUseCase) buildSocialMediaSection(ctx context.Context, entries []*registration.SocialMediaInfo) (map[string]dto.SocialMediaSection, error) {
	section := make(map[string]dto.SocialMediaSection, len(entries))

	for _, entry := range entries {
		plat, err := uc.platformRepo.GetByPLID(ctx, entry.PLID)
		if err != nil {
			return nil, err
		}
		if plat == nil {
			uc.logger.Errorw("no platform for stored plid", "plid", entry.PLID, "sid", entry.SID)
			return nil, errors.NewInternalError(
				fmt.Sprintf("No PlatformInfo found for plid: %s", entry.PLID))
		}

		pageURL, err := uc.codec.Decrypt(entry.PageURL)
		if err != nil {
			uc.logger.Errorw("failed to decrypt page URL", "sid", entry.SID, "error", err)
			return nil, errors.NewInternalError("failed to decrypt stored page URL", err.Error())
		}
		pageID, err := uc.codec.Decrypt(entry.PageID)
		if err != nil {
			uc.logger.Errorw("failed to decrypt page ID", "sid", entry.SID, "error", err)
			return nil, errors.NewInternalError("failed to decrypt stored page ID", err.Error())
		}

		section[plat.Name] = dto.SocialMediaSection{
			SMAName:    entry.SMAName,
			SMAPerson:  entry.SMAPerson,
			SMAEmail:   entry.SMAEmail,
			SMAPhone:   entry.SMAPhone,
			PageURL:    pageURL,
			PageID:     pageID,
			MiFBM:      entry.MiFBM,
			AddedDcube: entry.AddedDcube,
		}
	}

	return section, nil
}

func buildAgencySection(agency *registration.AgencyInfo) dto.AgencySection {
	if agency == nil {
		return dto.AgencySection{}
	}
	return dto.AgencySection{
		AgencyName:     &agency.AgencyName,
		PrimaryContact: &agency.PrimaryContact,
		PrimaryEmail:   &agency.PrimaryEmail,
		PrimaryPhone:   &agency.PrimaryPhone,
		NotApplicable:  &agency.NotApplicable,
	}
}
