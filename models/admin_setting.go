package models

import "time"

// AdminSetting is a key/value settings row. The admin passcode is stored here
// as a bcrypt hash under the "admin_passcode" key.
type AdminSetting struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SettingKey   string    `gorm:"column:setting_key;size:100;uniqueIndex;not null" json:"setting_key"`
	SettingValue string    `gorm:"column:setting_value;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}

const SettingKeyAdminPasscode = "admin_passcode"
