package usecases

import (
	"context"
	"fmt"
	"strings"

	"presence/internal/domain/platform"
	"presence/internal/domain/registration"
)

// =====================================================================
// Mock registration repository
// =====================================================================

type mockRegistrationRepository struct {
	createPersonalFn        func(ctx context.Context, personal *registration.PersonalInfo) error
	createHotelFn           func(ctx context.Context, hotel *registration.HotelInfo) error
	createAgencyFn          func(ctx context.Context, agency *registration.AgencyInfo) error
	createSocialMediaFn     func(ctx context.Context, entry *registration.SocialMediaInfo) error
	existsByPersonalEmailFn func(ctx context.Context, email string) (bool, error)
	existsByEIDFn           func(ctx context.Context, eid string) (bool, error)
	existsByPersonalPhoneFn func(ctx context.Context, phone string) (bool, error)
	getPersonalByEIDFn      func(ctx context.Context, eid string) (*registration.PersonalInfo, error)
	getHotelByPIDFn         func(ctx context.Context, pid uint) (*registration.HotelInfo, error)
	getAgencyByHIDFn        func(ctx context.Context, hid uint) (*registration.AgencyInfo, error)
	listSocialMediaByHIDFn  func(ctx context.Context, hid uint) ([]*registration.SocialMediaInfo, error)
}

func (m *mockRegistrationRepository) CreatePersonal(ctx context.Context, personal *registration.PersonalInfo) error {
	if m.createPersonalFn != nil {
		return m.createPersonalFn(ctx, personal)
	}
	return nil
}

func (m *mockRegistrationRepository) CreateHotel(ctx context.Context, hotel *registration.HotelInfo) error {
	if m.createHotelFn != nil {
		return m.createHotelFn(ctx, hotel)
	}
	return nil
}

func (m *mockRegistrationRepository) CreateAgency(ctx context.Context, agency *registration.AgencyInfo) error {
	if m.createAgencyFn != nil {
		return m.createAgencyFn(ctx, agency)
	}
	return nil
}

func (m *mockRegistrationRepository) CreateSocialMedia(ctx context.Context, entry *registration.SocialMediaInfo) error {
	if m.createSocialMediaFn != nil {
		return m.createSocialMediaFn(ctx, entry)
	}
	return nil
}

func (m *mockRegistrationRepository) ExistsByPersonalEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByPersonalEmailFn != nil {
		return m.existsByPersonalEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockRegistrationRepository) ExistsByEID(ctx context.Context, eid string) (bool, error) {
	if m.existsByEIDFn != nil {
		return m.existsByEIDFn(ctx, eid)
	}
	return false, nil
}

func (m *mockRegistrationRepository) ExistsByPersonalPhone(ctx context.Context, phone string) (bool, error) {
	if m.existsByPersonalPhoneFn != nil {
		return m.existsByPersonalPhoneFn(ctx, phone)
	}
	return false, nil
}

func (m *mockRegistrationRepository) GetPersonalByEID(ctx context.Context, eid string) (*registration.PersonalInfo, error) {
	if m.getPersonalByEIDFn != nil {
		return m.getPersonalByEIDFn(ctx, eid)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) GetHotelByPID(ctx context.Context, pid uint) (*registration.HotelInfo, error) {
	if m.getHotelByPIDFn != nil {
		return m.getHotelByPIDFn(ctx, pid)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) GetAgencyByHID(ctx context.Context, hid uint) (*registration.AgencyInfo, error) {
	if m.getAgencyByHIDFn != nil {
		return m.getAgencyByHIDFn(ctx, hid)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) ListSocialMediaByHID(ctx context.Context, hid uint) ([]*registration.SocialMediaInfo, error) {
	if m.listSocialMediaByHIDFn != nil {
		return m.listSocialMediaByHIDFn(ctx, hid)
	}
	return nil, nil
}

// =====================================================================
// Mock platform repository
// =====================================================================

type mockPlatformRepository struct {
	resolveNamesFn func(ctx context.Context, names []string) (map[string]string, error)
	getByPLIDFn    func(ctx context.Context, plid string) (*platform.Platform, error)
	seedFn         func(ctx context.Context, platforms []platform.Platform) error
}

func (m *mockPlatformRepository) ResolveNames(ctx context.Context, names []string) (map[string]string, error) {
	if m.resolveNamesFn != nil {
		return m.resolveNamesFn(ctx, names)
	}
	return map[string]string{}, nil
}

func (m *mockPlatformRepository) GetByPLID(ctx context.Context, plid string) (*platform.Platform, error) {
	if m.getByPLIDFn != nil {
		return m.getByPLIDFn(ctx, plid)
	}
	return nil, nil
}

func (m *mockPlatformRepository) Seed(ctx context.Context, platforms []platform.Platform) error {
	if m.seedFn != nil {
		return m.seedFn(ctx, platforms)
	}
	return nil
}

// =====================================================================
// Mock codec and transaction manager
// =====================================================================

// mockCodec wraps plaintext reversibly so tests can assert that values were
// transformed on the way in and restored on the way out.
type mockCodec struct {
	encryptFn func(plaintext string) (string, error)
	decryptFn func(ciphertext string) (string, error)
}

func (m *mockCodec) Encrypt(plaintext string) (string, error) {
	if m.encryptFn != nil {
		return m.encryptFn(plaintext)
	}
	return "enc(" + plaintext + ")", nil
}

func (m *mockCodec) Decrypt(ciphertext string) (string, error) {
	if m.decryptFn != nil {
		return m.decryptFn(ciphertext)
	}
	if !strings.HasPrefix(ciphertext, "enc(") || !strings.HasSuffix(ciphertext, ")") {
		return "", fmt.Errorf("not a mock ciphertext: %q", ciphertext)
	}
	return strings.TrimSuffix(strings.TrimPrefix(ciphertext, "enc("), ")"), nil
}

// mockTxManager runs the unit of work inline, without a database.
type mockTxManager struct {
	runInTransactionFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.runInTransactionFn != nil {
		return m.runInTransactionFn(ctx, fn)
	}
	return fn(ctx)
}
