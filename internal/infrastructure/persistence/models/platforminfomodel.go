package models

// PlatformInfoModel represents the static platform reference table, seeded
// once at startup and read-only afterwards. The unique index on
// platform_name makes the seed safe under concurrent first runs.
type PlatformInfoModel struct {
	PLID         string `gorm:"column:plid;primaryKey;size:4"`
	PlatformName string `gorm:"column:platform_name;uniqueIndex;not null;size:100"`
}

// TableName specifies the table name for GORM
func (PlatformInfoModel) TableName() string {
	return "platform_info"
}
