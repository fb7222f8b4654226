package endpoint

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
)

type createServiceRequestRequest struct {
	NationalCode  string `json:"national_code" form:"national_code" validate:"required,len=11,numeric"`
	UsesResidence bool   `json:"uses_residence" form:"uses_residence"`
	WomenCount    int    `json:"women_count" form:"women_count" validate:"omitempty,gte=0"`
	MenCount      int    `json:"men_count" form:"men_count" validate:"omitempty,gte=0"`
	Explanation   string `json:"explanation" form:"explanation"`
	NeededService string `json:"needed_service" form:"needed_service" validate:"required"`
}

type createConsultationRequestRequest struct {
	NationalCode     string `json:"national_code" form:"national_code" validate:"required,len=11,numeric"`
	Subject          string `json:"subject" form:"subject" validate:"required"`
	Description      string `json:"description" form:"description" validate:"required"`
	ConsultationType string `json:"consultation_type" form:"consultation_type" validate:"required,oneof=online in_person phone"`
	PreferredDate    string `json:"preferred_date" form:"preferred_date"`
	PreferredTime    string `json:"preferred_time" form:"preferred_time"`
}

// resolveAccountByNationalCode loads the account behind a request's national
// code. Requests never provision accounts, so a miss is a not-found failure.
func resolveAccountByNationalCode(db *gorm.DB, nationalCode string) (*model.Account, *requestError) {
	var account model.Account
	if err := db.Where("national_code = ?", nationalCode).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundFailure("No account found with this national code")
		}
		return nil, serverFailure("Failed to look up account", err)
	}
	return &account, nil
}

// ServiceRequests serves support requests filed against existing accounts.
var ServiceRequests = resource[model.ServiceRequest]{
	singular: "service request",
	preloads: []string{"Account"},
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.ServiceRequest, *requestError) {
		var req createServiceRequestRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveAccountByNationalCode(db, req.NationalCode)
		if reqErr != nil {
			return nil, reqErr
		}

		return &model.ServiceRequest{
			AccountID:     account.ID,
			UsesResidence: req.UsesResidence,
			WomenCount:    req.WomenCount,
			MenCount:      req.MenCount,
			Explanation:   req.Explanation,
			NeededService: req.NeededService,
		}, nil
	},
}

// ConsultationRequests serves consultation bookings. The national code must
// resolve to an account that already carries a patient profile.
var ConsultationRequests = resource[model.ConsultationRequest]{
	singular:     "consultation request",
	searchCols:   []string{"accounts.first_name", "accounts.last_name", "accounts.national_code", "subject"},
	searchJoin:   "JOIN accounts ON accounts.id = consultation_requests.account_id",
	searchSelect: "consultation_requests.*",
	preloads:     []string{"Account"},
	validatePatch: func(patch map[string]interface{}) map[string][]string {
		errs := map[string][]string{}
		if raw, ok := patch["consultation_type"]; ok {
			value, _ := raw.(string)
			if !contains(model.ConsultationTypes, value) {
				errs["consultation_type"] = append(errs["consultation_type"],
					fmt.Sprintf("must be one of: %s", strings.Join(model.ConsultationTypes, ", ")))
			}
		}
		if raw, ok := patch["status"]; ok {
			value, _ := raw.(string)
			if !contains(model.ConsultationStatuses, value) {
				errs["status"] = append(errs["status"],
					fmt.Sprintf("must be one of: %s", strings.Join(model.ConsultationStatuses, ", ")))
			}
		}
		if len(errs) == 0 {
			return nil
		}
		return errs
	},
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.ConsultationRequest, *requestError) {
		var req createConsultationRequestRequest
		if reqErr := bindCreateRequest(c, &req); reqErr != nil {
			return nil, reqErr
		}

		account, reqErr := resolveAccountByNationalCode(db, req.NationalCode)
		if reqErr != nil {
			return nil, reqErr
		}

		var patientCount int64
		if err := db.Model(&model.Patient{}).Where("account_id = ?", account.ID).Count(&patientCount).Error; err != nil {
			return nil, serverFailure("Failed to look up patient profile", err)
		}
		if patientCount == 0 {
			return nil, validationFailure("Validation failed", map[string][]string{
				"national_code": {"this national code does not belong to a patient"},
			})
		}

		return &model.ConsultationRequest{
			AccountID:        account.ID,
			Subject:          req.Subject,
			Description:      req.Description,
			ConsultationType: req.ConsultationType,
			PreferredDate:    req.PreferredDate,
			PreferredTime:    req.PreferredTime,
			Status:           model.ConsultationStatusPendingReview,
		}, nil
	},
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
