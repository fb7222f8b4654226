package endpoint

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

type createHealthAssistRequest struct {
	accountFields
	PresenterNationalCode string `json:"presenter_national_code" form:"presenter_national_code" validate:"omitempty,len=11,numeric"`
	PresenterFirstName    string `json:"presenter_first_name" form:"presenter_first_name"`
	PresenterLastName     string `json:"presenter_last_name" form:"presenter_last_name"`
	AssistType            string `json:"assist_type" form:"assist_type" validate:"required"`
	AssistDescription     string `json:"assist_description" form:"assist_description"`
}

// HealthAssists serves the health-assist volunteer collection.
var HealthAssists = resource[model.HealthAssist]{
	singular: "health assist",
	preloads: []string{"Account"},
	createFailMsg: "Account was registered but the health assist profile could not be saved. " +
		"Retry the registration with the same national code.",
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.HealthAssist, *requestError) {
		var req createHealthAssistRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveOrProvisionAccount(c, db, req.accountFields, model.RoleHealthAssist)
		if reqErr != nil {
			return nil, reqErr
		}

		letter, err := util.SaveUploadedFile(c, "letter_file", "health-assists")
		if err != nil {
			return nil, serverFailure("Failed to store letter file", err)
		}

		return &model.HealthAssist{
			AccountID:             account.ID,
			PresenterNationalCode: req.PresenterNationalCode,
			PresenterFirstName:    req.PresenterFirstName,
			PresenterLastName:     req.PresenterLastName,
			LetterFile:            letter,
			AssistType:            req.AssistType,
			AssistDescription:     req.AssistDescription,
		}, nil
	},
}
