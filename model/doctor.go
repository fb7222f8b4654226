package model

import "gorm.io/gorm"

// Doctor is the role profile for a collaborating physician.
type Doctor struct {
	gorm.Model
	AccountID            uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account              Account `json:"account" gorm:"foreignKey:AccountID"`
	FatherName           string  `json:"father_name" gorm:"column:father_name;type:varchar(128)"`
	MedicalCode          int     `json:"medical_code" gorm:"column:medical_code"`
	SecondaryPhoneNumber string  `json:"secondary_phone_number" gorm:"column:secondary_phone_number;type:varchar(15)"`
	Specialty            string  `json:"specialty" gorm:"column:specialty;type:varchar(128)"`
	Services             string  `json:"services" gorm:"column:services;type:varchar(128)"`
	CollaborationType    string  `json:"collaboration_type" gorm:"column:collaboration_type;type:varchar(128)"`
	Contribution         string  `json:"contribution" gorm:"column:contribution;type:text"`
}
