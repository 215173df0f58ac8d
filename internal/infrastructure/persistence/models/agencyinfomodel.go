package models

import "time"

// AgencyInfoModel represents the database persistence model for the optional
// booking agency. No row exists when a submission marks the agency as not
// applicable.
type AgencyInfoModel struct {
	AID            uint      `gorm:"column:aid;primaryKey;autoIncrement"`
	AgencyName     string    `gorm:"column:agency_name;not null;size:255"`
	PrimaryContact string    `gorm:"column:primary_contact;not null;size:100"`
	PrimaryEmail   string    `gorm:"column:primary_email;not null;size:255"`
	PrimaryPhone   string    `gorm:"column:primary_phone;not null;size:20"`
	NotApplicable  bool      `gorm:"column:not_applicable;not null;default:false"`
	HID            uint      `gorm:"column:hid;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (AgencyInfoModel) TableName() string {
	return "agency_info"
}
