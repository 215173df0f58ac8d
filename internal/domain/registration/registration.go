// Package registration holds the domain types for a hotel social-media
// presence registration: the personal contact, the hotel, the optional
// booking agency, and one social-media entry per platform.
package registration

// PersonalInfo is the person submitting the registration. EID is the
// externally assigned employee identifier used as the public lookup key.
type PersonalInfo struct {
	PID           uint
	FirstName     string
	LastName      string
	Title         string
	PersonalEmail string
	EID           string
	CountryCode   string
	PersonalPhone string
}

// HotelInfo is the hotel the registration belongs to.
type HotelInfo struct {
	HID              uint
	HotelName        string
	MarshaCode       string
	ManagedFranchise string
	Country          string
	State            string
	City             string
	ZipCode          int
	PID              uint
}

// AgencyInfo is the optional booking agency. No row exists when the
// submission marks the agency as not applicable.
type AgencyInfo struct {
	AID            uint
	AgencyName     string
	PrimaryContact string
	PrimaryEmail   string
	PrimaryPhone   string
	NotApplicable  bool
	HID            uint
}

// SocialMediaInfo is one platform entry. PageURL and PageID hold whatever
// the caller supplies; the persistence layer stores them as-is, so the use
// case layer is responsible for passing ciphertext on writes and decrypting
// on reads.
type SocialMediaInfo struct {
	SID        uint
	SMAName    string
	SMAPerson  string
	SMAEmail   string
	SMAPhone   string
	PageURL    string
	PageID     string
	MiFBM      bool
	AddedDcube bool
	HID        uint
	PLID       string
}
