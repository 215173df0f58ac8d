package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	regApp "presence/internal/application/registration"
	"presence/internal/application/registration/dto"
	"presence/internal/domain/platform"
	"presence/internal/domain/registration"
	"presence/internal/infrastructure/crypto"
	"presence/internal/shared/errors"
	"presence/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction. The
// shared db.TransactionManager satisfies it; tests substitute a pass-through.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SubmitRegistrationUseCase validates a submission and persists the four
// related entities as one unit of work.
type SubmitRegistrationUseCase struct {
	regRepo      registration.Repository
	platformRepo platform.Repository
	codec        crypto.Codec
	txManager    TransactionManager
	logger       logger.Interface
}

// NewSubmitRegistrationUseCase creates a new submit registration use case
func NewSubmitRegistrationUseCase(
	regRepo registration.Repository,
	platformRepo platform.Repository,
	codec crypto.Codec,
	txManager TransactionManager,
	log logger.Interface,
) *SubmitRegistrationUseCase {
	return &SubmitRegistrationUseCase{
		regRepo:      regRepo,
		platformRepo: platformRepo,
		codec:        codec,
		txManager:    txManager,
		logger:       log,
	}
}

// Execute runs the submission pipeline: rule cascade, uniqueness checks,
// platform resolution, then the ordered transactional write. Any failure
// leaves the database untouched.
func (uc *SubmitRegistrationUseCase) Execute(ctx context.Context, req dto.SubmitRegistrationRequest) (*dto.SubmitRegistrationResponse, error) {
	if err := regApp.ValidateSubmission(&req); err != nil {
		uc.logger.Warnw("submission rejected by validation", "eid", req.EID, "error", err)
		return nil, err
	}

	if err := uc.checkUniqueness(ctx, &req); err != nil {
		return nil, err
	}

	platformIDs, err := uc.resolvePlatforms(ctx, req.PlatformInputs)
	if err != nil {
		return nil, err
	}

	var resp dto.SubmitRegistrationResponse

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		personal := &registration.PersonalInfo{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Title:         req.Title,
			PersonalEmail: req.PersonalEmail,
			EID:           req.EID,
			CountryCode:   req.CountryCode,
			PersonalPhone: req.PersonalPhone,
		}
		if err := uc.regRepo.CreatePersonal(txCtx, personal); err != nil {
			return err
		}

		hotel := &registration.HotelInfo{
			HotelName:        req.HotelName,
			MarshaCode:       req.MarshaCode,
			ManagedFranchise: req.ManagedFranchise,
			Country:          req.Country,
			State:            req.State,
			City:             req.City,
			ZipCode:          req.ZipCode,
			PID:              personal.PID,
		}
		if err := uc.regRepo.CreateHotel(txCtx, hotel); err != nil {
			return err
		}

		var aid *uint
		if !req.NotApplicable {
			agency := &registration.AgencyInfo{
				AgencyName:     req.AgencyName,
				PrimaryContact: req.PrimaryContact,
				PrimaryEmail:   req.PrimaryEmail,
				PrimaryPhone:   req.PrimaryPhone,
				NotApplicable:  false,
				HID:            hotel.HID,
			}
			if err := uc.regRepo.CreateAgency(txCtx, agency); err != nil {
				return err
			}
			aid = &agency.AID
		}

		sids := make([]uint, 0, len(req.PlatformInputs))
		for _, name := range sortedPlatformNames(req.PlatformInputs) {
			entry := req.PlatformInputs[name]

			encryptedURL, err := uc.codec.Encrypt(entry.PageURL)
			if err != nil {
				return fmt.Errorf("failed to encrypt page URL: %w", err)
			}
			encryptedID, err := uc.codec.Encrypt(entry.PageID)
			if err != nil {
				return fmt.Errorf("failed to encrypt page ID: %w", err)
			}

			socialMedia := &registration.SocialMediaInfo{
				SMAName:    entry.SMAName,
				SMAPerson:  entry.SMAPerson,
				SMAEmail:   entry.SMAEmail,
				SMAPhone:   entry.SMAPhone,
				PageURL:    encryptedURL,
				PageID:     encryptedID,
				MiFBM:      *entry.MiFBM,
				AddedDcube: derivedAddedDcube(entry),
				HID:        hotel.HID,
				PLID:       platformIDs[name],
			}
			if err := uc.regRepo.CreateSocialMedia(txCtx, socialMedia); err != nil {
				return err
			}
			sids = append(sids, socialMedia.SID)
		}

		resp = dto.SubmitRegistrationResponse{
			PID: personal.PID,
			HID: hotel.HID,
			AID: aid,
			SID: sids,
		}
		return nil
	})
	if err != nil {
		// The storage-level unique indexes are the authoritative guard; a
		// concurrent submission that slipped past the pre-check lands here.
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate personal record detected during write", "eid", req.EID, "error", err)
			return nil, errors.NewConflictError(
				"A record with this email, employee ID or phone already exists.", req.EID)
		}
		uc.logger.Errorw("failed to persist registration", "eid", req.EID, "error", err)
		return nil, err
	}

	uc.logger.Infow("registration submitted",
		"pid", resp.PID, "hid", resp.HID, "sids", resp.SID)

	return &resp, nil
}

// checkUniqueness pre-checks the three unique personal columns so the
// common duplicate case fails before any row is written.
func (uc *SubmitRegistrationUseCase) checkUniqueness(ctx context.Context, req *dto.SubmitRegistrationRequest) error {
	exists, err := uc.regRepo.ExistsByPersonalEmail(ctx, req.PersonalEmail)
	if err != nil {
		return err
	}
	if exists {
		uc.logger.Warnw("duplicate personal email", "email", req.PersonalEmail)
		return errors.NewConflictError(fmt.Sprintf("Personal email '%s' already exists.", req.PersonalEmail))
	}

	exists, err = uc.regRepo.ExistsByEID(ctx, req.EID)
	if err != nil {
		return err
	}
	if exists {
		uc.logger.Warnw("duplicate employee id", "eid", req.EID)
		return errors.NewConflictError(fmt.Sprintf("Employee ID '%s' already exists.", req.EID))
	}

	exists, err = uc.regRepo.ExistsByPersonalPhone(ctx, req.PersonalPhone)
	if err != nil {
		return err
	}
	if exists {
		uc.logger.Warnw("duplicate personal phone", "phone", req.PersonalPhone)
		return errors.NewConflictError(fmt.Sprintf("Personal phone '%s' already exists.", req.PersonalPhone))
	}

	return nil
}

// resolvePlatforms maps every referenced platform name to its plid. Any
// unknown name rejects the whole submission, naming the missing platforms
// collectively.
func (uc *SubmitRegistrationUseCase) resolvePlatforms(ctx context.Context, entries map[string]dto.SocialMediaEntry) (map[string]string, error) {
	names := sortedPlatformNames(entries)

	resolved, err := uc.platformRepo.ResolveNames(ctx, names)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := resolved[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		uc.logger.Warnw("unknown platforms in submission", "platforms", missing)
		return nil, errors.NewBadRequestError(
			fmt.Sprintf("None of the platforms %s were found in PlatformInfo.", strings.Join(missing, ", ")))
	}

	return resolved, nil
}

// derivedAddedDcube forces added_dcube true for pages managed through the
// internal brand-management platform; otherwise the validated explicit value
// applies.
func derivedAddedDcube(entry dto.SocialMediaEntry) bool {
	if *entry.MiFBM {
		return true
	}
	return *entry.AddedDcube
}

func sortedPlatformNames(entries map[string]dto.SocialMediaEntry) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
