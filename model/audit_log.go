package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog represents a persisted audit event (sign-ins, registrations,
// endpoint calls). Written best-effort; a failed insert never fails the
// operation that produced it.
type AuditLog struct {
	gorm.Model
	EventType string         `json:"event_type" gorm:"column:event_type;type:varchar(64)"`
	AccountID string         `json:"account_id" gorm:"column:account_id;type:varchar(64);index"`
	Email     string         `json:"email" gorm:"column:email;type:varchar(191);index"`
	IP        string         `json:"ip" gorm:"column:ip;type:varchar(45)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
}

// Migrations lists every persistent model in dependency order, for use with
// db.AutoMigrate at startup and in test setup.
func Migrations() []interface{} {
	return []interface{}{
		&Account{},
		&Patient{},
		&Benefactor{},
		&Doctor{},
		&HealthAssist{},
		&PrivateCompany{},
		&ServiceCenter{},
		&MedicalCenter{},
		&CharityCenter{},
		&GovernmentOrganization{},
		&Association{},
		&ServiceRequest{},
		&ConsultationRequest{},
		&AuditLog{},
	}
}
