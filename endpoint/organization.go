package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

// organizationPatch re-validates the approval status when an update touches
// it. All other organization fields are free-form.
func organizationPatch(patch map[string]interface{}) map[string][]string {
	raw, ok := patch["status"]
	if !ok {
		return nil
	}
	status, _ := raw.(string)
	for _, valid := range model.OrganizationStatuses {
		if status == valid {
			return nil
		}
	}
	return map[string][]string{
		"status": {fmt.Sprintf("must be one of: %s, %s, %s", model.StatusPending, model.StatusActive, model.StatusInactive)},
	}
}

// PrivateCompanies serves the private-sector company registry.
var PrivateCompanies = resource[model.PrivateCompany]{
	singular:      "private company",
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.PrivateCompany, *requestError) {
		var company model.PrivateCompany
		if reqErr := bindCreateRequest(c, &company); reqErr != nil {
			return nil, reqErr
		}

		errs := map[string][]string{}
		if company.StartYear < company.FoundedYear {
			errs["start_year"] = append(errs["start_year"], "cannot precede the founding year")
		}
		if company.Licensed {
			if company.LicenseYear == 0 {
				errs["license_year"] = append(errs["license_year"], "this field is required for licensed companies")
			} else if company.LicenseYear < company.FoundedYear {
				errs["license_year"] = append(errs["license_year"], "cannot precede the founding year")
			}
		}
		if len(errs) > 0 {
			return nil, validationFailure("Validation failed", errs)
		}

		membershipRequest, err := util.SaveUploadedFile(c, "membership_request_file", "private-companies")
		if err != nil {
			return nil, serverFailure("Failed to store membership request file", err)
		}
		activityLicense, err := util.SaveUploadedFile(c, "activity_license_file", "private-companies")
		if err != nil {
			return nil, serverFailure("Failed to store activity license file", err)
		}
		logo, err := util.SaveUploadedFile(c, "logo_file", "private-companies")
		if err != nil {
			return nil, serverFailure("Failed to store logo file", err)
		}

		company.Model = gorm.Model{}
		company.MembershipRequestFile = membershipRequest
		company.ActivityLicenseFile = activityLicense
		company.LogoFile = logo
		company.Status = model.StatusPending
		return &company, nil
	},
}

// ServiceCenters serves the social-services provider registry.
var ServiceCenters = resource[model.ServiceCenter]{
	singular:      "service center",
	searchCols:    []string{"name", "service_category", "city", "state"},
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.ServiceCenter, *requestError) {
		var center model.ServiceCenter
		if reqErr := bindCreateRequest(c, &center); reqErr != nil {
			return nil, reqErr
		}

		license, err := util.SaveUploadedFile(c, "license_file", "service-centers")
		if err != nil {
			return nil, serverFailure("Failed to store license file", err)
		}

		center.Model = gorm.Model{}
		center.LicenseFile = license
		center.Status = model.StatusPending
		return &center, nil
	},
}

// MedicalCenters serves the hospital and clinic registry.
var MedicalCenters = resource[model.MedicalCenter]{
	singular:      "medical center",
	searchCols:    []string{"name", "type", "city", "state"},
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.MedicalCenter, *requestError) {
		var center model.MedicalCenter
		if reqErr := bindCreateRequest(c, &center); reqErr != nil {
			return nil, reqErr
		}

		license, err := util.SaveUploadedFile(c, "license_file", "medical-centers")
		if err != nil {
			return nil, serverFailure("Failed to store license file", err)
		}

		center.Model = gorm.Model{}
		center.LicenseFile = license
		center.Status = model.StatusPending
		return &center, nil
	},
}

// CharityCenters serves the charity registry.
var CharityCenters = resource[model.CharityCenter]{
	singular:      "charity center",
	searchCols:    []string{"name", "main_activity_area", "city", "state"},
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.CharityCenter, *requestError) {
		var center model.CharityCenter
		if reqErr := bindCreateRequest(c, &center); reqErr != nil {
			return nil, reqErr
		}

		charter, err := util.SaveUploadedFile(c, "charter_file", "charity-centers")
		if err != nil {
			return nil, serverFailure("Failed to store charter file", err)
		}
		logo, err := util.SaveUploadedFile(c, "logo_file", "charity-centers")
		if err != nil {
			return nil, serverFailure("Failed to store logo file", err)
		}

		center.Model = gorm.Model{}
		center.CharterFile = charter
		center.LogoFile = logo
		center.Status = model.StatusPending
		return &center, nil
	},
}

// GovernmentOrganizations serves the public-sector body registry.
var GovernmentOrganizations = resource[model.GovernmentOrganization]{
	singular:      "government organization",
	searchCols:    []string{"name", "type", "activity_area", "city"},
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.GovernmentOrganization, *requestError) {
		var organization model.GovernmentOrganization
		if reqErr := bindCreateRequest(c, &organization); reqErr != nil {
			return nil, reqErr
		}

		logo, err := util.SaveUploadedFile(c, "logo_file", "government-organizations")
		if err != nil {
			return nil, serverFailure("Failed to store logo file", err)
		}

		organization.Model = gorm.Model{}
		organization.LogoFile = logo
		organization.Status = model.StatusPending
		return &organization, nil
	},
}

// Associations serves the non-governmental association registry.
var Associations = resource[model.Association]{
	singular:      "association",
	searchCols:    []string{"name", "type", "main_activity_area", "city"},
	validatePatch: organizationPatch,
	buildCreate: func(c *gin.Context, db *gorm.DB) (*model.Association, *requestError) {
		var association model.Association
		if reqErr := bindCreateRequest(c, &association); reqErr != nil {
			return nil, reqErr
		}

		logo, err := util.SaveUploadedFile(c, "logo_file", "associations")
		if err != nil {
			return nil, serverFailure("Failed to store logo file", err)
		}

		association.Model = gorm.Model{}
		association.LogoFile = logo
		association.Status = model.StatusPending
		return &association, nil
	},
}
