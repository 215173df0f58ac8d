package models

import "time"

// PersonalInfoModel represents the database persistence model for the
// personal contact. This is the anti-corruption layer between domain and
// database. The unique indexes back the uniqueness invariants on email, eid
// and phone so concurrent submissions cannot race past the pre-checks.
type PersonalInfoModel struct {
	PID           uint      `gorm:"column:pid;primaryKey;autoIncrement"`
	FirstName     string    `gorm:"column:first_name;not null;size:100"`
	LastName      string    `gorm:"column:last_name;not null;size:100"`
	Title         string    `gorm:"column:title;not null;size:100"`
	PersonalEmail string    `gorm:"column:personal_email;uniqueIndex;not null;size:255"`
	EID           string    `gorm:"column:eid;uniqueIndex;not null;size:50"`
	CountryCode   string    `gorm:"column:country_code;not null;size:10"`
	PersonalPhone string    `gorm:"column:personal_phone;uniqueIndex;not null;size:20"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (PersonalInfoModel) TableName() string {
	return "personal_info"
}
