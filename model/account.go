package model

import "gorm.io/gorm"

// Account roles. An account is tagged with the role that first registered it,
// but may back more than one role profile.
const (
	RolePatient      = "patient"
	RoleBenefactor   = "benefactor"
	RoleDoctor       = "doctor"
	RoleHealthAssist = "health_assist"
)

// Account is the shared user record, keyed by the 11-character national code.
// It is provisioned lazily the first time any role-profile registration
// references its national code.
type Account struct {
	gorm.Model
	NationalCode string `json:"national_code" gorm:"column:national_code;type:varchar(11);uniqueIndex"`
	Username     string `json:"username" gorm:"column:username;type:varchar(64)"`
	Password     string `json:"-" gorm:"column:password"`
	PasswordSalt string `json:"-" gorm:"column:password_salt"`
	FirstName    string `json:"first_name" gorm:"column:first_name;type:varchar(128)"`
	LastName     string `json:"last_name" gorm:"column:last_name;type:varchar(128)"`
	Email        string `json:"email" gorm:"column:email;type:varchar(191)"`
	PhoneNumber  string `json:"phone_number" gorm:"column:phone_number;type:varchar(15)"`
	Gender       string `json:"gender" gorm:"column:gender;type:varchar(16)"`
	Job          string `json:"job" gorm:"column:job;type:varchar(128)"`
	Education    string `json:"education" gorm:"column:education;type:varchar(128)"`
	HowReferred  string `json:"how_referred" gorm:"column:how_referred;type:varchar(128)"`
	State        string `json:"state" gorm:"column:state;type:varchar(256)"`
	City         string `json:"city" gorm:"column:city;type:varchar(256)"`
	County       string `json:"county" gorm:"column:county;type:varchar(256)"`
	HomeAddress  string `json:"home_address" gorm:"column:home_address;type:varchar(512)"`
	JobAddress   string `json:"job_address" gorm:"column:job_address;type:varchar(512)"`
	UserType     string `json:"user_type" gorm:"column:user_type;type:varchar(32)"`
}
