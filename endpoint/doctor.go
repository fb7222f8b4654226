package endpoint

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
)

type createDoctorRequest struct {
	accountFields
	FatherName           string `json:"father_name" form:"father_name" validate:"required"`
	MedicalCode          int    `json:"medical_code" form:"medical_code" validate:"required,gte=1"`
	SecondaryPhoneNumber string `json:"secondary_phone_number" form:"secondary_phone_number"`
	Specialty            string `json:"specialty" form:"specialty" validate:"required"`
	Services             string `json:"services" form:"services"`
	CollaborationType    string `json:"collaboration_type" form:"collaboration_type" validate:"required"`
	Contribution         string `json:"contribution" form:"contribution"`
}

// Doctors serves the collaborating-physician collection.
var Doctors = resource[model.Doctor]{
	singular: "doctor",
	preloads: []string{"Account"},
	createFailMsg: "Account was registered but the doctor profile could not be saved. " +
		"Retry the registration with the same national code.",
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.Doctor, *requestError) {
		var req createDoctorRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveOrProvisionAccount(c, db, req.accountFields, model.RoleDoctor)
		if reqErr != nil {
			return nil, reqErr
		}

		return &model.Doctor{
			AccountID:            account.ID,
			FatherName:           req.FatherName,
			MedicalCode:          req.MedicalCode,
			SecondaryPhoneNumber: req.SecondaryPhoneNumber,
			Specialty:            req.Specialty,
			Services:             req.Services,
			CollaborationType:    req.CollaborationType,
			Contribution:         req.Contribution,
		}, nil
	},
}
