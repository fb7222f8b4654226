package model

import "gorm.io/gorm"

// HealthAssist is the role profile for a health-assist volunteer.
type HealthAssist struct {
	gorm.Model
	AccountID             uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account               Account `json:"account" gorm:"foreignKey:AccountID"`
	PresenterNationalCode string  `json:"presenter_national_code" gorm:"column:presenter_national_code;type:varchar(11)"`
	PresenterFirstName    string  `json:"presenter_first_name" gorm:"column:presenter_first_name;type:varchar(128)"`
	PresenterLastName     string  `json:"presenter_last_name" gorm:"column:presenter_last_name;type:varchar(128)"`
	LetterFile            string  `json:"letter_file" gorm:"column:letter_file;type:varchar(512)"`
	AssistType            string  `json:"assist_type" gorm:"column:assist_type;type:varchar(512)"`
	AssistDescription     string  `json:"assist_description" gorm:"column:assist_description;type:varchar(128)"`
}
