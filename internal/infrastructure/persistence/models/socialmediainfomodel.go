package models

import "time"

// SocialMediaInfoModel represents the database persistence model for one
// platform entry. PageURL and PageID hold base64 AES-GCM ciphertext; the
// plaintext never reaches the database.
type SocialMediaInfoModel struct {
	SID        uint      `gorm:"column:sid;primaryKey;autoIncrement"`
	SMAName    string    `gorm:"column:sma_name;not null;size:100"`
	SMAPerson  string    `gorm:"column:sma_person;not null;size:100"`
	SMAEmail   string    `gorm:"column:sma_email;not null;size:255"`
	SMAPhone   string    `gorm:"column:sma_phone;not null;size:20"`
	PageURL    string    `gorm:"column:page_url;not null;type:text"`
	PageID     string    `gorm:"column:page_id;not null;type:text"`
	MiFBM      bool      `gorm:"column:mi_fbm;not null"`
	AddedDcube bool      `gorm:"column:added_dcube;not null"`
	HID        uint      `gorm:"column:hid;not null;index"`
	PLID       string    `gorm:"column:plid;not null;size:4;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (SocialMediaInfoModel) TableName() string {
	return "social_media_info"
}
