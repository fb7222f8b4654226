package model

import "gorm.io/gorm"

// Benefactor is the role profile for a donating person.
type Benefactor struct {
	gorm.Model
	AccountID      uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account        Account `json:"account" gorm:"foreignKey:AccountID"`
	LandlineNumber string  `json:"landline_number" gorm:"column:landline_number;type:varchar(15)"`
	Contribution   string  `json:"contribution" gorm:"column:contribution;type:varchar(512)"`
}
