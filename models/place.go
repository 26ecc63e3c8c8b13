package models

import "time"

// Place is a physical location or service point with its own feedback link.
// Deactivating a place blocks new submissions through its link without
// deleting history.
type Place struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"column:name;size:255;not null" json:"name"`
	NameAr            string    `gorm:"column:name_ar;size:255" json:"name_ar"`
	Address           string    `gorm:"column:address;type:text" json:"address"`
	AddressAr         string    `gorm:"column:address_ar;type:text" json:"address_ar"`
	QuestionnaireType string    `gorm:"column:questionnaire_type;size:50;default:'food'" json:"questionnaire_type"`
	Slug              string    `gorm:"column:slug;size:32;uniqueIndex;not null" json:"slug"`
	Active            bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Place) TableName() string {
	return "places"
}
