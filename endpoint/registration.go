package endpoint

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

// accountFields is the shared identity block embedded in every role
// registration request. The national code is the account key.
type accountFields struct {
	NationalCode string `json:"national_code" form:"national_code" validate:"required,len=11,numeric"`
	FirstName    string `json:"first_name" form:"first_name" validate:"required"`
	LastName     string `json:"last_name" form:"last_name" validate:"required"`
	Email        string `json:"email" form:"email" validate:"omitempty,email"`
	PhoneNumber  string `json:"phone_number" form:"phone_number" validate:"required"`
	Gender       string `json:"gender" form:"gender" validate:"required,oneof=male female"`
	Job          string `json:"job" form:"job"`
	Education    string `json:"education" form:"education" validate:"required"`
	HowReferred  string `json:"how_referred" form:"how_referred" validate:"required"`
	State        string `json:"state" form:"state" validate:"required"`
	City         string `json:"city" form:"city" validate:"required"`
	County       string `json:"county" form:"county" validate:"required"`
	HomeAddress  string `json:"home_address" form:"home_address" validate:"required"`
	JobAddress   string `json:"job_address" form:"job_address"`
}

// bindCreateRequest binds JSON or multipart form bodies into req and runs
// struct validation. Multipart is accepted so registrations can carry
// document uploads alongside their fields.
func bindCreateRequest(c *gin.Context, req interface{}) *requestError {
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		err = c.ShouldBind(req)
	} else {
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		return userFailure("Invalid request body", err)
	}
	if errs := util.ValidateStruct(req); len(errs) > 0 {
		return validationFailure("Validation failed", errs)
	}
	return nil
}

// resolveOrProvisionAccount finds the account registered under the national
// code, creating it when absent. A freshly provisioned account gets the
// national code as username and initial password; the caller's profile row
// is attached to whichever account comes back.
func resolveOrProvisionAccount(c *gin.Context, db *gorm.DB, in accountFields, role string) (*model.Account, *requestError) {
	var account model.Account
	err := db.Where("national_code = ?", in.NationalCode).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, serverFailure("Failed to look up account", err)
	}

	email := in.Email
	if email == "" {
		email = in.NationalCode + "@example.com"
	}

	salt, err := util.GenerateSalt()
	if err != nil {
		return nil, serverFailure("Failed to provision account", err)
	}
	hashed, err := util.HashPassword(in.NationalCode, salt)
	if err != nil {
		return nil, serverFailure("Failed to provision account", err)
	}

	account = model.Account{
		NationalCode: in.NationalCode,
		Username:     in.NationalCode,
		Password:     hashed,
		PasswordSalt: salt,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		Job:          in.Job,
		Education:    in.Education,
		HowReferred:  in.HowReferred,
		State:        in.State,
		City:         in.City,
		County:       in.County,
		HomeAddress:  in.HomeAddress,
		JobAddress:   in.JobAddress,
		UserType:     role,
	}

	if err := db.Create(&account).Error; err != nil {
		// A concurrent registration may have claimed the national code
		// between lookup and insert. Re-resolve before failing.
		var existing model.Account
		if lookupErr := db.Where("national_code = ?", in.NationalCode).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, validationFailure("Validation failed", map[string][]string{
			"national_code": {"An account could not be created with this national code."},
		})
	}

	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventAccountProvision,
		AccountID: in.NationalCode,
		Email:     email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "account provisioned during " + role + " registration",
	})

	return &account, nil
}
