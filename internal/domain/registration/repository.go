package registration

import "context"

// Repository defines the data operations for registration entities. Create
// methods set the generated surrogate key back on the entity. Get methods
// return (nil, nil) when no row exists.
type Repository interface {
	// CreatePersonal inserts a PersonalInfo row and sets PID
	CreatePersonal(ctx context.Context, personal *PersonalInfo) error

	// CreateHotel inserts a HotelInfo row and sets HID
	CreateHotel(ctx context.Context, hotel *HotelInfo) error

	// CreateAgency inserts an AgencyInfo row and sets AID
	CreateAgency(ctx context.Context, agency *AgencyInfo) error

	// CreateSocialMedia inserts a SocialMediaInfo row and sets SID
	CreateSocialMedia(ctx context.Context, entry *SocialMediaInfo) error

	// ExistsByPersonalEmail checks uniqueness of personal_email
	ExistsByPersonalEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEID checks uniqueness of eid
	ExistsByEID(ctx context.Context, eid string) (bool, error)

	// ExistsByPersonalPhone checks uniqueness of personal_phone
	ExistsByPersonalPhone(ctx context.Context, phone string) (bool, error)

	// GetPersonalByEID retrieves the personal record for an employee id
	GetPersonalByEID(ctx context.Context, eid string) (*PersonalInfo, error)

	// GetHotelByPID retrieves the hotel owned by a personal record
	GetHotelByPID(ctx context.Context, pid uint) (*HotelInfo, error)

	// GetAgencyByHID retrieves the agency for a hotel, if one exists
	GetAgencyByHID(ctx context.Context, hid uint) (*AgencyInfo, error)

	// ListSocialMediaByHID retrieves all platform entries for a hotel
	ListSocialMediaByHID(ctx context.Context, hid uint) ([]*SocialMediaInfo, error)
}
