package models

import "time"

// HotelInfoModel represents the database persistence model for a hotel.
// Each row references the personal record created in the same submission.
type HotelInfoModel struct {
	HID              uint      `gorm:"column:hid;primaryKey;autoIncrement"`
	HotelName        string    `gorm:"column:hotel_name;not null;size:255"`
	MarshaCode       string    `gorm:"column:marsha_code;not null;size:20"`
	ManagedFranchise string    `gorm:"column:managed_franchise;not null;size:50"`
	Country          string    `gorm:"column:country;not null;size:100"`
	State            string    `gorm:"column:state;not null;size:100"`
	City             string    `gorm:"column:city;not null;size:100"`
	ZipCode          int       `gorm:"column:zip_code;not null"`
	PID              uint      `gorm:"column:pid;not null;index"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (HotelInfoModel) TableName() string {
	return "hotel_info"
}
