// Package registration implements the submission validation engine and the
// application services built on top of it.
package registration

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"presence/internal/application/registration/dto"
	"presence/internal/shared/errors"
)

// validate carries the custom format rules used by the submission rule set.
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Stricter than validator's built-in "email": requires a dotted domain
	// and a 2+ letter TLD.
	mustRegister("strict_email", `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mustRegister("us_phone", `^\d{10}$`)
	mustRegister("page_url", `^https://www\..*\.com(/.*)?$`)
}

func mustRegister(tag, pattern string) {
	re := regexp.MustCompile(pattern)
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// ValidateSubmission applies the full rule cascade to a submission and
// returns an unprocessable-input error naming the offending fields, or nil.
// Nothing is persisted on failure; the caller only proceeds on nil.
func ValidateSubmission(req *dto.SubmitRegistrationRequest) error {
	if err := validatePersonalGroup(req); err != nil {
		return err
	}
	if err := validateHotelGroup(req); err != nil {
		return err
	}
	if err := validateAgencyGroup(req); err != nil {
		return err
	}
	if err := validateEmailPhoneFormats(req); err != nil {
		return err
	}
	if len(req.PlatformInputs) == 0 {
		return errors.NewUnprocessableError("At least one platform input is required.")
	}
	for _, name := range sortedKeys(req.PlatformInputs) {
		entry := req.PlatformInputs[name]
		if err := validateSocialMediaEntry(name, &entry); err != nil {
			return err
		}
	}
	return nil
}

func validatePersonalGroup(req *dto.SubmitRegistrationRequest) error {
	missing := missingFields([]field{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"title", req.Title},
		{"personal_email", req.PersonalEmail},
		{"eid", req.EID},
		{"country_code", req.CountryCode},
		{"personal_phone", req.PersonalPhone},
	})
	return missingGroupError("PersonalInfo", missing)
}

func validateHotelGroup(req *dto.SubmitRegistrationRequest) error {
	missing := missingFields([]field{
		{"hotel_name", req.HotelName},
		{"marsha_code", req.MarshaCode},
		{"managed_franchise", req.ManagedFranchise},
		{"country", req.Country},
		{"state", req.State},
		{"city", req.City},
	})
	// Zero counts as missing: the payload carries a plain integer with no
	// way to distinguish absent from 0, and no real zip code is 0.
	if req.ZipCode == 0 {
		missing = append(missing, "zip_code")
	}
	return missingGroupError("HotelInfo", missing)
}

func validateAgencyGroup(req *dto.SubmitRegistrationRequest) error {
	// The whole group is skipped when no agency is involved.
	if req.NotApplicable {
		return nil
	}
	missing := missingFields([]field{
		{"agency_name", req.AgencyName},
		{"primary_contact", req.PrimaryContact},
		{"primary_email", req.PrimaryEmail},
		{"primary_phone", req.PrimaryPhone},
	})
	return missingGroupError("AgencyInfo", missing)
}

func validateEmailPhoneFormats(req *dto.SubmitRegistrationRequest) error {
	if err := checkEmail(req.PersonalEmail); err != nil {
		return err
	}
	if err := checkPhone(req.PersonalPhone); err != nil {
		return err
	}
	if req.PrimaryEmail != "" {
		if err := checkEmail(req.PrimaryEmail); err != nil {
			return err
		}
	}
	if req.PrimaryPhone != "" {
		if err := checkPhone(req.PrimaryPhone); err != nil {
			return err
		}
	}
	return nil
}

func validateSocialMediaEntry(platformName string, entry *dto.SocialMediaEntry) error {
	missing := missingFields([]field{
		{"sma_name", entry.SMAName},
		{"sma_person", entry.SMAPerson},
		{"sma_email", entry.SMAEmail},
		{"sma_phone", entry.SMAPhone},
		{"pageURL", entry.PageURL},
		{"pageID", entry.PageID},
	})
	if len(missing) > 0 {
		return errors.NewUnprocessableError(
			fmt.Sprintf("Missing '%s' from 'SocialMediaInfo'", strings.Join(missing, ", ")),
			fmt.Sprintf("platform %s", platformName),
		)
	}

	if err := checkEmail(entry.SMAEmail); err != nil {
		return err
	}
	if err := checkPhone(entry.SMAPhone); err != nil {
		return err
	}
	if validate.Var(entry.PageURL, "page_url") != nil {
		return errors.NewUnprocessableError(fmt.Sprintf("Invalid URL for %s.", entry.PageURL))
	}

	if entry.MiFBM == nil {
		return errors.NewUnprocessableError("mi_fbm is a required field.",
			fmt.Sprintf("platform %s", platformName))
	}
	if !*entry.MiFBM && entry.AddedDcube == nil {
		return errors.NewUnprocessableError("added_dcube must be specified if MI FBM is No.",
			fmt.Sprintf("platform %s", platformName))
	}

	return nil
}

func checkEmail(email string) error {
	if validate.Var(email, "strict_email") != nil {
		return errors.NewUnprocessableError(
			fmt.Sprintf("Invalid email structure for %s. It should follow structure: user@example.com", email))
	}
	return nil
}

func checkPhone(phone string) error {
	if validate.Var(phone, "us_phone") != nil {
		return errors.NewUnprocessableError(
			fmt.Sprintf("Invalid phone number for %s. It must be exactly 10 digits.", phone))
	}
	return nil
}

type field struct {
	name  string
	value string
}

func missingFields(fields []field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func missingGroupError(group string, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return errors.NewUnprocessableError(
		fmt.Sprintf("Missing '%s' from '%s'", strings.Join(missing, ", "), group))
}

func sortedKeys(m map[string]dto.SocialMediaEntry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
