// Package dto defines the wire-level request and response shapes for the
// registration API.
package dto

// SocialMediaEntry is one per-platform entry in a submission. MiFBM and
// AddedDcube are pointers so the validation engine can tell "absent" from
// "false".
type SocialMediaEntry struct {
	SMAName    string `json:"sma_name"`
	SMAPerson  string `json:"sma_person"`
	SMAEmail   string `json:"sma_email"`
	SMAPhone   string `json:"sma_phone"`
	PageURL    string `json:"pageURL"`
	PageID     string `json:"pageID"`
	MiFBM      *bool  `json:"mi_fbm"`
	AddedDcube *bool  `json:"added_dcube"`
}

// SubmitRegistrationRequest is the submission payload: personal, hotel and
// optional agency field groups plus a mapping from platform name to entry.
type SubmitRegistrationRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Title         string `json:"title"`
	PersonalEmail string `json:"personal_email"`
	EID           string `json:"eid"`
	CountryCode   string `json:"country_code"`
	PersonalPhone string `json:"personal_phone"`

	HotelName        string `json:"hotel_name"`
	MarshaCode       string `json:"marsha_code"`
	ManagedFranchise string `json:"managed_franchise"`
	Country          string `json:"country"`
	State            string `json:"state"`
	City             string `json:"city"`
	ZipCode          int    `json:"zip_code"`

	AgencyName     string `json:"agency_name"`
	PrimaryContact string `json:"primary_contact"`
	PrimaryEmail   string `json:"primary_email"`
	PrimaryPhone   string `json:"primary_phone"`
	NotApplicable  bool   `json:"not_applicable"`

	PlatformInputs map[string]SocialMediaEntry `json:"platform_inputs"`
}

// SubmitRegistrationResponse carries the generated identifiers. AID is nil
// when no agency row was created.
type SubmitRegistrationResponse struct {
	PID uint   `json:"pid"`
	HID uint   `json:"hid"`
	AID *uint  `json:"aid"`
	SID []uint `json:"sid"`
}

// PersonalSection is the personal block of a read response.
type PersonalSection struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Title         string `json:"title"`
	PersonalEmail string `json:"personal_email"`
	EID           string `json:"eid"`
	CountryCode   string `json:"country_code"`
	PersonalPhone string `json:"personal_phone"`
}

// HotelSection is the hotel block of a read response.
type HotelSection struct {
	HotelName        string `json:"hotel_name"`
	MarshaCode       string `json:"marsha_code"`
	ManagedFranchise string `json:"managed_franchise"`
	Country          string `json:"country"`
	State            string `json:"state"`
	City             string `json:"city"`
	ZipCode          int    `json:"zip_code"`
}

// AgencySection is the agency block of a read response. All fields are null
// when the submission marked the agency as not applicable.
type AgencySection struct {
	AgencyName     *string `json:"agency_name"`
	PrimaryContact *string `json:"primary_contact"`
	PrimaryEmail   *string `json:"primary_email"`
	PrimaryPhone   *string `json:"primary_phone"`
	NotApplicable  *bool   `json:"not_applicable"`
}

// SocialMediaSection is one decrypted platform entry of a read response.
type SocialMediaSection struct {
	SMAName    string `json:"sma_name"`
	SMAPerson  string `json:"sma_person"`
	SMAEmail   string `json:"sma_email"`
	SMAPhone   string `json:"sma_phone"`
	PageURL    string `json:"pageURL"`
	PageID     string `json:"pageID"`
	MiFBM      bool   `json:"mi_fbm"`
	AddedDcube bool   `json:"added_dcube"`
}

// RegistrationResponse is the nested read response. The section keys match
// the original service's wire format.
type RegistrationResponse struct {
	PersonalInfo    PersonalSection               `json:"Personal Info"`
	HotelInfo       HotelSection                  `json:"Hotel Info"`
	AgencyInfo      AgencySection                 `json:"Agency Info"`
	SocialMediaInfo map[string]SocialMediaSection `json:"Social Media Info"`
}
