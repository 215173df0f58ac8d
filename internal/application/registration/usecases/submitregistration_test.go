package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presence/internal/application/registration/dto"
	"presence/internal/domain/registration"
	"presence/internal/shared/errors"
	"presence/internal/shared/logger"
)

func boolPtr(b bool) *bool {
	return &b
}

func submitEntry() dto.SocialMediaEntry {
	return dto.SocialMediaEntry{
		SMAName:    "Hotel Social Team",
		SMAPerson:  "Jane Smith",
		SMAEmail:   "jane.smith@example.com",
		SMAPhone:   "1234567890",
		PageURL:    "https://www.facebook.com/myhotel",
		PageID:     "fb-page-001",
		MiFBM:      boolPtr(true),
		AddedDcube: nil,
	}
}

func submitRequest() dto.SubmitRegistrationRequest {
	return dto.SubmitRegistrationRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Title:         "Marketing Manager",
		PersonalEmail: "john.doe@example.com",
		EID:           "E12345",
		CountryCode:   "+1",
		PersonalPhone: "5551234567",

		HotelName:        "Grand Plaza",
		MarshaCode:       "GPX",
		ManagedFranchise: "Managed",
		Country:          "USA",
		State:            "CA",
		City:             "Los Angeles",
		ZipCode:          90001,

		AgencyName:     "Creative Agency",
		PrimaryContact: "Alice Brown",
		PrimaryEmail:   "alice@example.com",
		PrimaryPhone:   "5559876543",
		NotApplicable:  false,

		PlatformInputs: map[string]dto.SocialMediaEntry{
			"Facebook": submitEntry(),
		},
	}
}

func newSubmitUseCase(regRepo *mockRegistrationRepository, platformRepo *mockPlatformRepository) *SubmitRegistrationUseCase {
	return NewSubmitRegistrationUseCase(regRepo, platformRepo, &mockCodec{}, &mockTxManager{}, logger.NewLogger())
}

func TestSubmitRegistration_HappyPath(t *testing.T) {
	var createdSocial []*registration.SocialMediaInfo

	regRepo := &mockRegistrationRepository{
		createPersonalFn: func(ctx context.Context, personal *registration.PersonalInfo) error {
			personal.PID = 1
			return nil
		},
		createHotelFn: func(ctx context.Context, hotel *registration.HotelInfo) error {
			assert.Equal(t, uint(1), hotel.PID)
			hotel.HID = 10
			return nil
		},
		createAgencyFn: func(ctx context.Context, agency *registration.AgencyInfo) error {
			assert.Equal(t, uint(10), agency.HID)
			agency.AID = 100
			return nil
		},
		createSocialMediaFn: func(ctx context.Context, entry *registration.SocialMediaInfo) error {
			entry.SID = uint(1000 + len(createdSocial))
			createdSocial = append(createdSocial, entry)
			return nil
		},
	}
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			assert.Equal(t, []string{"Facebook"}, names)
			return map[string]string{"Facebook": "0101"}, nil
		},
	}

	uc := newSubmitUseCase(regRepo, platformRepo)
	resp, err := uc.Execute(context.Background(), submitRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.PID)
	assert.Equal(t, uint(10), resp.HID)
	require.NotNil(t, resp.AID)
	assert.Equal(t, uint(100), *resp.AID)
	assert.Equal(t, []uint{1000}, resp.SID)

	require.Len(t, createdSocial, 1)
	stored := createdSocial[0]
	assert.Equal(t, "0101", stored.PLID)
	assert.Equal(t, uint(10), stored.HID)
	assert.Equal(t, "enc(https://www.facebook.com/myhotel)", stored.PageURL)
	assert.Equal(t, "enc(fb-page-001)", stored.PageID)
	assert.True(t, stored.MiFBM)
	assert.True(t, stored.AddedDcube)
}

func TestSubmitRegistration_ValidationShortCircuits(t *testing.T) {
	repoTouched := false
	regRepo := &mockRegistrationRepository{
		existsByPersonalEmailFn: func(ctx context.Context, email string) (bool, error) {
			repoTouched = true
			return false, nil
		},
	}

	uc := newSubmitUseCase(regRepo, &mockPlatformRepository{})

	req := submitRequest()
	req.FirstName = ""
	resp, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsUnprocessableError(err))
	assert.False(t, repoTouched)
}

func TestSubmitRegistration_UniquenessConflicts(t *testing.T) {
	tests := []struct {
		name    string
		repo    *mockRegistrationRepository
		message string
	}{
		{
			name: "duplicate email",
			repo: &mockRegistrationRepository{
				existsByPersonalEmailFn: func(ctx context.Context, email string) (bool, error) {
					return true, nil
				},
			},
			message: "Personal email 'john.doe@example.com' already exists.",
		},
		{
			name: "duplicate eid",
			repo: &mockRegistrationRepository{
				existsByEIDFn: func(ctx context.Context, eid string) (bool, error) {
					return true, nil
				},
			},
			message: "Employee ID 'E12345' already exists.",
		},
		{
			name: "duplicate phone",
			repo: &mockRegistrationRepository{
				existsByPersonalPhoneFn: func(ctx context.Context, phone string) (bool, error) {
					return true, nil
				},
			},
			message: "Personal phone '5551234567' already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newSubmitUseCase(tt.repo, &mockPlatformRepository{
				resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
					return map[string]string{"Facebook": "0101"}, nil
				},
			})

			resp, err := uc.Execute(context.Background(), submitRequest())

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.IsConflictError(err))
			assert.Equal(t, tt.message, errors.GetAppError(err).Message)
		})
	}
}

func TestSubmitRegistration_UnknownPlatform(t *testing.T) {
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			return map[string]string{}, nil
		},
	}

	uc := newSubmitUseCase(&mockRegistrationRepository{}, platformRepo)
	resp, err := uc.Execute(context.Background(), submitRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
	assert.Equal(t, "None of the platforms Facebook were found in PlatformInfo.", appErr.Message)
}

func TestSubmitRegistration_AddedDcubeDerivation(t *testing.T) {
	tests := []struct {
		name       string
		miFBM      bool
		addedDcube *bool
		want       bool
	}{
		{"managed pages are always added", true, boolPtr(false), true},
		{"managed with nil added_dcube", true, nil, true},
		{"unmanaged keeps explicit true", false, boolPtr(true), true},
		{"unmanaged keeps explicit false", false, boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *registration.SocialMediaInfo
			regRepo := &mockRegistrationRepository{
				createSocialMediaFn: func(ctx context.Context, entry *registration.SocialMediaInfo) error {
					stored = entry
					return nil
				},
			}
			platformRepo := &mockPlatformRepository{
				resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
					return map[string]string{"Facebook": "0101"}, nil
				},
			}

			req := submitRequest()
			entry := submitEntry()
			entry.MiFBM = boolPtr(tt.miFBM)
			entry.AddedDcube = tt.addedDcube
			req.PlatformInputs = map[string]dto.SocialMediaEntry{"Facebook": entry}

			uc := newSubmitUseCase(regRepo, platformRepo)
			_, err := uc.Execute(context.Background(), req)

			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.want, stored.AddedDcube)
		})
	}
}

func TestSubmitRegistration_NotApplicableSkipsAgency(t *testing.T) {
	agencyCreated := false
	regRepo := &mockRegistrationRepository{
		createAgencyFn: func(ctx context.Context, agency *registration.AgencyInfo) error {
			agencyCreated = true
			return nil
		},
	}
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			return map[string]string{"Facebook": "0101"}, nil
		},
	}

	req := submitRequest()
	req.NotApplicable = true
	req.AgencyName = ""
	req.PrimaryContact = ""
	req.PrimaryEmail = ""
	req.PrimaryPhone = ""

	uc := newSubmitUseCase(regRepo, platformRepo)
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.AID)
	assert.False(t, agencyCreated)
}

func TestSubmitRegistration_MultiplePlatformsInSortedOrder(t *testing.T) {
	var createdNames []string
	regRepo := &mockRegistrationRepository{
		createSocialMediaFn: func(ctx context.Context, entry *registration.SocialMediaInfo) error {
			createdNames = append(createdNames, entry.PLID)
			entry.SID = uint(len(createdNames))
			return nil
		},
	}
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			return map[string]string{"Facebook": "0101", "YouTube": "0107"}, nil
		},
	}

	req := submitRequest()
	req.PlatformInputs = map[string]dto.SocialMediaEntry{
		"YouTube":  submitEntry(),
		"Facebook": submitEntry(),
	}

	uc := newSubmitUseCase(regRepo, platformRepo)
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"0101", "0107"}, createdNames)
	assert.Equal(t, []uint{1, 2}, resp.SID)
}

func TestSubmitRegistration_DuplicateRaceBecomesConflict(t *testing.T) {
	// Pre-checks pass but the insert trips a unique index, as happens when
	// two submissions race.
	regRepo := &mockRegistrationRepository{
		createPersonalFn: func(ctx context.Context, personal *registration.PersonalInfo) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry 'john.doe@example.com' for key 'idx_personal_info_personal_email'")
		},
	}
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			return map[string]string{"Facebook": "0101"}, nil
		},
	}

	uc := newSubmitUseCase(regRepo, platformRepo)
	resp, err := uc.Execute(context.Background(), submitRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "A record with this email, employee ID or phone already exists.", errors.GetAppError(err).Message)
}

func TestSubmitRegistration_TransactionFailurePropagates(t *testing.T) {
	txErr := fmt.Errorf("connection reset")
	txManager := &mockTxManager{
		runInTransactionFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return txErr
		},
	}
	platformRepo := &mockPlatformRepository{
		resolveNamesFn: func(ctx context.Context, names []string) (map[string]string, error) {
			return map[string]string{"Facebook": "0101"}, nil
		},
	}

	uc := NewSubmitRegistrationUseCase(&mockRegistrationRepository{}, platformRepo, &mockCodec{}, txManager, logger.NewLogger())
	resp, err := uc.Execute(context.Background(), submitRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, txErr)
}
