package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presence/internal/domain/registration"
)

func TestRegistrationMapper_NilSafety(t *testing.T) {
	m := NewRegistrationMapper()

	assert.Nil(t, m.PersonalToModel(nil))
	assert.Nil(t, m.PersonalToEntity(nil))
	assert.Nil(t, m.HotelToModel(nil))
	assert.Nil(t, m.HotelToEntity(nil))
	assert.Nil(t, m.AgencyToModel(nil))
	assert.Nil(t, m.AgencyToEntity(nil))
	assert.Nil(t, m.SocialMediaToModel(nil))
	assert.Nil(t, m.SocialMediaToEntity(nil))
}

func TestRegistrationMapper_SocialMediaRoundTrip(t *testing.T) {
	m := NewRegistrationMapper()

	entity := &registration.SocialMediaInfo{
		SID:        1000,
		SMAName:    "Hotel Social Team",
		SMAPerson:  "Jane Smith",
		SMAEmail:   "jane.smith@example.com",
		SMAPhone:   "1234567890",
		PageURL:    "opaque-ciphertext-url",
		PageID:     "opaque-ciphertext-id",
		MiFBM:      true,
		AddedDcube: false,
		HID:        10,
		PLID:       "0101",
	}

	model := m.SocialMediaToModel(entity)
	require.NotNil(t, model)
	// Ciphertext passes through untouched; the mapper never decodes it.
	assert.Equal(t, "opaque-ciphertext-url", model.PageURL)
	assert.Equal(t, "opaque-ciphertext-id", model.PageID)

	back := m.SocialMediaToEntity(model)
	assert.Equal(t, entity, back)
}
