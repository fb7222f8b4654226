package endpoint

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
)

type createBenefactorRequest struct {
	accountFields
	LandlineNumber string `json:"landline_number" form:"landline_number"`
	Contribution   string `json:"contribution" form:"contribution" validate:"required"`
}

// Benefactors serves the benefactor collection.
var Benefactors = resource[model.Benefactor]{
	singular: "benefactor",
	preloads: []string{"Account"},
	createFailMsg: "Account was registered but the benefactor profile could not be saved. " +
		"Retry the registration with the same national code.",
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.Benefactor, *requestError) {
		var req createBenefactorRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveOrProvisionAccount(c, db, req.accountFields, model.RoleBenefactor)
		if reqErr != nil {
			return nil, reqErr
		}

		return &model.Benefactor{
			AccountID:      account.ID,
			LandlineNumber: req.LandlineNumber,
			Contribution:   req.Contribution,
		}, nil
	},
}
