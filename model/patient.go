package model

import "gorm.io/gorm"

// Patient is the role profile for a person requesting social/medical support.
type Patient struct {
	gorm.Model
	AccountID              uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account                Account `json:"account" gorm:"foreignKey:AccountID"`
	PresenterNationalCode  string  `json:"presenter_national_code" gorm:"column:presenter_national_code;type:varchar(11)"`
	PresenterFirstName     string  `json:"presenter_first_name" gorm:"column:presenter_first_name;type:varchar(128)"`
	PresenterLastName      string  `json:"presenter_last_name" gorm:"column:presenter_last_name;type:varchar(128)"`
	FatherName             string  `json:"father_name" gorm:"column:father_name;type:varchar(128)"`
	Age                    int     `json:"age" gorm:"column:age"`
	MaritalStatus          string  `json:"marital_status" gorm:"column:marital_status;type:varchar(16)"`
	HeadOfHousehold        bool    `json:"head_of_household" gorm:"column:head_of_household"`
	DependentsCount        int     `json:"dependents_count" gorm:"column:dependents_count"`
	FamilyStatus           string  `json:"family_status" gorm:"column:family_status;type:varchar(1024)"`
	Employed               bool    `json:"employed" gorm:"column:employed"`
	Skill                  string  `json:"skill" gorm:"column:skill;type:varchar(128)"`
	HousingStatus          string  `json:"housing_status" gorm:"column:housing_status;type:varchar(32)"`
	LandlineNumber         string  `json:"landline_number" gorm:"column:landline_number;type:varchar(15)"`
	ReferringOrgan         string  `json:"referring_organ" gorm:"column:referring_organ;type:varchar(32)"`
	BankCardNumber         string  `json:"bank_card_number" gorm:"column:bank_card_number;type:varchar(32)"`
	Insurance              string  `json:"insurance" gorm:"column:insurance;type:varchar(128)"`
	SicknessDescription    string  `json:"sickness_description" gorm:"column:sickness_description;type:varchar(512)"`
	Contact1Name           string  `json:"contact1_name" gorm:"column:contact1_name;type:varchar(128)"`
	Contact1FamilyName     string  `json:"contact1_family_name" gorm:"column:contact1_family_name;type:varchar(128)"`
	Contact1PhoneNumber    string  `json:"contact1_phone_number" gorm:"column:contact1_phone_number;type:varchar(15)"`
	Contact2Name           string  `json:"contact2_name" gorm:"column:contact2_name;type:varchar(128)"`
	Contact2FamilyName     string  `json:"contact2_family_name" gorm:"column:contact2_family_name;type:varchar(128)"`
	Contact2PhoneNumber    string  `json:"contact2_phone_number" gorm:"column:contact2_phone_number;type:varchar(15)"`
	NationalCardImage      string  `json:"national_card_image" gorm:"column:national_card_image;type:varchar(512)"`
	BirthCertificateImage  string  `json:"birth_certificate_image" gorm:"column:birth_certificate_image;type:varchar(512)"`
}
