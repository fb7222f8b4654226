package endpoint

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

type createPatientRequest struct {
	accountFields
	PresenterNationalCode string `json:"presenter_national_code" form:"presenter_national_code" validate:"omitempty,len=11,numeric"`
	PresenterFirstName    string `json:"presenter_first_name" form:"presenter_first_name"`
	PresenterLastName     string `json:"presenter_last_name" form:"presenter_last_name"`
	FatherName            string `json:"father_name" form:"father_name" validate:"required"`
	Age                   int    `json:"age" form:"age" validate:"required,gte=0,lte=150"`
	MaritalStatus         string `json:"marital_status" form:"marital_status" validate:"required,oneof=single married divorced widowed"`
	HeadOfHousehold       bool   `json:"head_of_household" form:"head_of_household"`
	DependentsCount       int    `json:"dependents_count" form:"dependents_count" validate:"omitempty,gte=0"`
	FamilyStatus          string `json:"family_status" form:"family_status"`
	Employed              bool   `json:"employed" form:"employed"`
	Skill                 string `json:"skill" form:"skill"`
	HousingStatus         string `json:"housing_status" form:"housing_status" validate:"required"`
	LandlineNumber        string `json:"landline_number" form:"landline_number"`
	ReferringOrgan        string `json:"referring_organ" form:"referring_organ"`
	BankCardNumber        string `json:"bank_card_number" form:"bank_card_number" validate:"omitempty,numeric"`
	Insurance             string `json:"insurance" form:"insurance"`
	SicknessDescription   string `json:"sickness_description" form:"sickness_description" validate:"required"`
	Contact1Name          string `json:"contact1_name" form:"contact1_name"`
	Contact1FamilyName    string `json:"contact1_family_name" form:"contact1_family_name"`
	Contact1PhoneNumber   string `json:"contact1_phone_number" form:"contact1_phone_number"`
	Contact2Name          string `json:"contact2_name" form:"contact2_name"`
	Contact2FamilyName    string `json:"contact2_family_name" form:"contact2_family_name"`
	Contact2PhoneNumber   string `json:"contact2_phone_number" form:"contact2_phone_number"`
}

// Patients serves the patient collection. Registration provisions the backing
// account from the national code when it does not exist yet.
var Patients = resource[model.Patient]{
	singular: "patient",
	preloads: []string{"Account"},
	createFailMsg: "Account was registered but the patient profile could not be saved. " +
		"Retry the registration with the same national code.",
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.Patient, *requestError) {
		var req createPatientRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveOrProvisionAccount(c, db, req.accountFields, model.RolePatient)
		if reqErr != nil {
			return nil, reqErr
		}

		nationalCard, err := util.SaveUploadedFile(c, "national_card_image", "patients")
		if err != nil {
			return nil, serverFailure("Failed to store national card image", err)
		}
		birthCertificate, err := util.SaveUploadedFile(c, "birth_certificate_image", "patients")
		if err != nil {
			return nil, serverFailure("Failed to store birth certificate image", err)
		}

		return &model.Patient{
			AccountID:             account.ID,
			PresenterNationalCode: req.PresenterNationalCode,
			PresenterFirstName:    req.PresenterFirstName,
			PresenterLastName:     req.PresenterLastName,
			FatherName:            req.FatherName,
			Age:                   req.Age,
			MaritalStatus:         req.MaritalStatus,
			HeadOfHousehold:       req.HeadOfHousehold,
			DependentsCount:       req.DependentsCount,
			FamilyStatus:          req.FamilyStatus,
			Employed:              req.Employed,
			Skill:                 req.Skill,
			HousingStatus:         req.HousingStatus,
			LandlineNumber:        req.LandlineNumber,
			ReferringOrgan:        req.ReferringOrgan,
			BankCardNumber:        req.BankCardNumber,
			Insurance:             req.Insurance,
			SicknessDescription:   req.SicknessDescription,
			Contact1Name:          req.Contact1Name,
			Contact1FamilyName:    req.Contact1FamilyName,
			Contact1PhoneNumber:   req.Contact1PhoneNumber,
			Contact2Name:          req.Contact2Name,
			Contact2FamilyName:    req.Contact2FamilyName,
			Contact2PhoneNumber:   req.Contact2PhoneNumber,
			NationalCardImage:     nationalCard,
			BirthCertificateImage: birthCertificate,
		}, nil
	},
}

// GetPatientByNationalCode resolves a patient profile through the account's
// national code. The two miss cases are reported separately so a caller can
// tell an unknown person apart from a non-patient account.
func GetPatientByNationalCode(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	nationalCode := c.Param("national_code")

	var account model.Account
	if err := db.Where("national_code = ?", nationalCode).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "No account found with this national code",
				Err: err,
			})
		} else {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to look up account",
				Err: err,
			})
		}
		return
	}

	var patient model.Patient
	if err := db.Preload("Account").Where("account_id = ?", account.ID).First(&patient).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "This national code does not belong to a patient",
				Err: err,
			})
		} else {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to look up patient",
				Err: err,
			})
		}
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}
