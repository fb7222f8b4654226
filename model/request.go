package model

import "gorm.io/gorm"

// Consultation request type and status enumerations.
const (
	ConsultationTypeOnline   = "online"
	ConsultationTypeInPerson = "in_person"
	ConsultationTypePhone    = "phone"

	ConsultationStatusPendingReview = "pending_review"
	ConsultationStatusAccepted      = "accepted"
	ConsultationStatusRejected      = "rejected"
	ConsultationStatusCompleted     = "completed"
)

// ConsultationTypes lists the accepted consultation_type values.
var ConsultationTypes = []string{ConsultationTypeOnline, ConsultationTypeInPerson, ConsultationTypePhone}

// ConsultationStatuses lists the accepted status values.
var ConsultationStatuses = []string{
	ConsultationStatusPendingReview,
	ConsultationStatusAccepted,
	ConsultationStatusRejected,
	ConsultationStatusCompleted,
}

// ServiceRequest is a support request filed for an existing patient account.
// The account must already exist; requests never provision one.
type ServiceRequest struct {
	gorm.Model
	AccountID     uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account       Account `json:"account" gorm:"foreignKey:AccountID"`
	UsesResidence bool    `json:"uses_residence" gorm:"column:uses_residence"`
	WomenCount    int     `json:"women_count" gorm:"column:women_count"`
	MenCount      int     `json:"men_count" gorm:"column:men_count"`
	Explanation   string  `json:"explanation" gorm:"column:explanation;type:varchar(512)"`
	NeededService string  `json:"needed_service" gorm:"column:needed_service;type:varchar(512)"`
}

// ConsultationRequest is a consultation booking tied to an account that must
// also carry a patient profile.
type ConsultationRequest struct {
	gorm.Model
	AccountID        uint    `json:"account_id" gorm:"column:account_id;index;not null"`
	Account          Account `json:"account" gorm:"foreignKey:AccountID"`
	Subject          string  `json:"subject" gorm:"column:subject;type:varchar(255)"`
	Description      string  `json:"description" gorm:"column:description;type:text"`
	ConsultationType string  `json:"consultation_type" gorm:"column:consultation_type;type:varchar(50)"`
	PreferredDate    string  `json:"preferred_date" gorm:"column:preferred_date;type:varchar(20)"`
	PreferredTime    string  `json:"preferred_time" gorm:"column:preferred_time;type:varchar(20)"`
	Status           string  `json:"status" gorm:"column:status;type:varchar(50);default:pending_review"`
}
