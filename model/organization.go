package model

import "gorm.io/gorm"

// Organization approval statuses. Every newly submitted organization starts
// out pending until an operator approves it.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// OrganizationStatuses lists the accepted values for the status field.
var OrganizationStatuses = []string{StatusPending, StatusActive, StatusInactive}

// PrivateCompany is a registered private-sector company.
type PrivateCompany struct {
	gorm.Model
	Name                  string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(256)"`
	FoundedYear           int    `json:"founded_year" form:"founded_year" validate:"required,gte=1300" gorm:"column:founded_year"`
	Licensed              bool   `json:"licensed" form:"licensed" gorm:"column:licensed"`
	StartYear             int    `json:"start_year" form:"start_year" validate:"required,gte=1300" gorm:"column:start_year"`
	LicenseYear           int    `json:"license_year" form:"license_year" validate:"omitempty,gte=1300" gorm:"column:license_year"`
	LicenseReference      string `json:"license_reference" form:"license_reference" gorm:"column:license_reference;type:varchar(128)"`
	Activity              string `json:"activity" form:"activity" validate:"required" gorm:"column:activity;type:varchar(256)"`
	SpecializedArea       string `json:"specialized_area" form:"specialized_area" gorm:"column:specialized_area;type:varchar(512)"`
	TargetCommunity       string `json:"target_community" form:"target_community" gorm:"column:target_community;type:varchar(512)"`
	ShareableFeatures     string `json:"shareable_features" form:"shareable_features" gorm:"column:shareable_features;type:varchar(512)"`
	CEOName               string `json:"ceo_name" form:"ceo_name" validate:"required" gorm:"column:ceo_name;type:varchar(128)"`
	CEOPhoneNumber        string `json:"ceo_phone_number" form:"ceo_phone_number" validate:"required" gorm:"column:ceo_phone_number;type:varchar(15)"`
	SecondCEOName         string `json:"second_ceo_name" form:"second_ceo_name" gorm:"column:second_ceo_name;type:varchar(128)"`
	SecondCEOPhoneNumber  string `json:"second_ceo_phone_number" form:"second_ceo_phone_number" gorm:"column:second_ceo_phone_number;type:varchar(15)"`
	LandlineNumber        string `json:"landline_number" form:"landline_number" gorm:"column:landline_number;type:varchar(15)"`
	State                 string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(256)"`
	City                  string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(256)"`
	County                string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(256)"`
	ResidentialAddress    string `json:"residential_address" form:"residential_address" gorm:"column:residential_address;type:varchar(512)"`
	WorkplaceAddress      string `json:"workplace_address" form:"workplace_address" validate:"required" gorm:"column:workplace_address;type:varchar(512)"`
	ActivityScope         string `json:"activity_scope" form:"activity_scope" gorm:"column:activity_scope;type:varchar(256)"`
	RepresentativeName    string `json:"representative_name" form:"representative_name" gorm:"column:representative_name;type:varchar(128)"`
	RepresentativePhone   string `json:"representative_phone" form:"representative_phone" gorm:"column:representative_phone;type:varchar(15)"`
	MembershipRequestFile string `json:"membership_request_file" form:"-" gorm:"column:membership_request_file;type:varchar(512)"`
	ActivityLicenseFile   string `json:"activity_license_file" form:"-" gorm:"column:activity_license_file;type:varchar(512)"`
	LogoFile              string `json:"logo_file" form:"-" gorm:"column:logo_file;type:varchar(512)"`
	Status                string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}

// ServiceCenter is a registered social-services provider.
type ServiceCenter struct {
	gorm.Model
	Name               string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(255)"`
	ServiceCategory    string `json:"service_category" form:"service_category" validate:"required" gorm:"column:service_category;type:varchar(255)"`
	DetailedServices   string `json:"detailed_services" form:"detailed_services" gorm:"column:detailed_services;type:text"`
	Email              string `json:"email" form:"email" validate:"omitempty,email" gorm:"column:email;type:varchar(191)"`
	PhoneNumber        string `json:"phone_number" form:"phone_number" validate:"required" gorm:"column:phone_number;type:varchar(20)"`
	State              string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(100)"`
	City               string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(100)"`
	County             string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(100)"`
	AddressDetail      string `json:"address_detail" form:"address_detail" validate:"required" gorm:"column:address_detail;type:text"`
	Website            string `json:"website" form:"website" validate:"omitempty,url" gorm:"column:website;type:varchar(255)"`
	WorkingHours       string `json:"working_hours" form:"working_hours" gorm:"column:working_hours;type:varchar(255)"`
	ContactPersonName  string `json:"contact_person_name" form:"contact_person_name" validate:"required" gorm:"column:contact_person_name;type:varchar(255)"`
	ContactPersonPhone string `json:"contact_person_phone" form:"contact_person_phone" validate:"required" gorm:"column:contact_person_phone;type:varchar(20)"`
	LicenseNumber      string `json:"license_number" form:"license_number" gorm:"column:license_number;type:varchar(100)"`
	LicenseFile        string `json:"license_file" form:"-" gorm:"column:license_file;type:varchar(512)"`
	ServiceArea        string `json:"service_area" form:"service_area" gorm:"column:service_area;type:varchar(255)"`
	Description        string `json:"description" form:"description" gorm:"column:description;type:text"`
	Status             string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}

// MedicalCenter is a registered hospital or clinic.
type MedicalCenter struct {
	gorm.Model
	Name               string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(255)"`
	Type               string `json:"type" form:"type" validate:"required" gorm:"column:type;type:varchar(100)"`
	Email              string `json:"email" form:"email" validate:"omitempty,email" gorm:"column:email;type:varchar(191)"`
	PhoneNumber        string `json:"phone_number" form:"phone_number" validate:"required" gorm:"column:phone_number;type:varchar(20)"`
	State              string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(100)"`
	City               string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(100)"`
	County             string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(100)"`
	AddressDetail      string `json:"address_detail" form:"address_detail" validate:"required" gorm:"column:address_detail;type:text"`
	Website            string `json:"website" form:"website" validate:"omitempty,url" gorm:"column:website;type:varchar(255)"`
	Services           string `json:"services" form:"services" gorm:"column:services;type:text"`
	WorkingHours       string `json:"working_hours" form:"working_hours" gorm:"column:working_hours;type:varchar(255)"`
	ContactPersonName  string `json:"contact_person_name" form:"contact_person_name" validate:"required" gorm:"column:contact_person_name;type:varchar(255)"`
	ContactPersonPhone string `json:"contact_person_phone" form:"contact_person_phone" validate:"required" gorm:"column:contact_person_phone;type:varchar(20)"`
	LicenseNumber      string `json:"license_number" form:"license_number" gorm:"column:license_number;type:varchar(100)"`
	LicenseFile        string `json:"license_file" form:"-" gorm:"column:license_file;type:varchar(512)"`
	Description        string `json:"description" form:"description" gorm:"column:description;type:text"`
	Status             string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}

// CharityCenter is a registered charity organization.
type CharityCenter struct {
	gorm.Model
	Name               string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(255)"`
	MainActivityArea   string `json:"main_activity_area" form:"main_activity_area" validate:"required" gorm:"column:main_activity_area;type:varchar(255)"`
	Type               string `json:"type" form:"type" gorm:"column:type;type:varchar(100)"`
	RegistrationNumber string `json:"registration_number" form:"registration_number" gorm:"column:registration_number;type:varchar(100)"`
	EstablishmentDate  string `json:"establishment_date" form:"establishment_date" gorm:"column:establishment_date;type:varchar(50)"`
	MissionAndGoals    string `json:"mission_and_goals" form:"mission_and_goals" gorm:"column:mission_and_goals;type:text"`
	Email              string `json:"email" form:"email" validate:"omitempty,email" gorm:"column:email;type:varchar(191)"`
	PhoneNumber        string `json:"phone_number" form:"phone_number" validate:"required" gorm:"column:phone_number;type:varchar(20)"`
	State              string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(100)"`
	City               string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(100)"`
	County             string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(100)"`
	AddressDetail      string `json:"address_detail" form:"address_detail" validate:"required" gorm:"column:address_detail;type:text"`
	Website            string `json:"website" form:"website" validate:"omitempty,url" gorm:"column:website;type:varchar(255)"`
	ContactPersonName  string `json:"contact_person_name" form:"contact_person_name" validate:"required" gorm:"column:contact_person_name;type:varchar(255)"`
	ContactPersonPhone string `json:"contact_person_phone" form:"contact_person_phone" validate:"required" gorm:"column:contact_person_phone;type:varchar(20)"`
	CurrentNeeds       string `json:"current_needs" form:"current_needs" gorm:"column:current_needs;type:text"`
	DonationMethods    string `json:"donation_methods" form:"donation_methods" gorm:"column:donation_methods;type:text"`
	CharterFile        string `json:"charter_file" form:"-" gorm:"column:charter_file;type:varchar(512)"`
	LogoFile           string `json:"logo_file" form:"-" gorm:"column:logo_file;type:varchar(512)"`
	Description        string `json:"description" form:"description" gorm:"column:description;type:text"`
	Status             string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}

// GovernmentOrganization is a registered public-sector body.
type GovernmentOrganization struct {
	gorm.Model
	Name               string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(255)"`
	ParentBody         string `json:"parent_body" form:"parent_body" gorm:"column:parent_body;type:varchar(255)"`
	Type               string `json:"type" form:"type" validate:"required" gorm:"column:type;type:varchar(100)"`
	ActivityArea       string `json:"activity_area" form:"activity_area" validate:"required" gorm:"column:activity_area;type:varchar(255)"`
	OfficialWebsite    string `json:"official_website" form:"official_website" validate:"omitempty,url" gorm:"column:official_website;type:varchar(255)"`
	MainPhoneNumber    string `json:"main_phone_number" form:"main_phone_number" validate:"required" gorm:"column:main_phone_number;type:varchar(20)"`
	FaxNumber          string `json:"fax_number" form:"fax_number" gorm:"column:fax_number;type:varchar(20)"`
	OfficialEmail      string `json:"official_email" form:"official_email" validate:"omitempty,email" gorm:"column:official_email;type:varchar(191)"`
	State              string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(100)"`
	City               string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(100)"`
	County             string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(100)"`
	CentralAddress     string `json:"central_address" form:"central_address" validate:"required" gorm:"column:central_address;type:text"`
	HeadPersonName     string `json:"head_person_name" form:"head_person_name" validate:"required" gorm:"column:head_person_name;type:varchar(255)"`
	LiaisonPersonName  string `json:"liaison_person_name" form:"liaison_person_name" gorm:"column:liaison_person_name;type:varchar(255)"`
	LiaisonPersonPhone string `json:"liaison_person_phone" form:"liaison_person_phone" gorm:"column:liaison_person_phone;type:varchar(20)"`
	LiaisonPersonEmail string `json:"liaison_person_email" form:"liaison_person_email" validate:"omitempty,email" gorm:"column:liaison_person_email;type:varchar(191)"`
	CollaborationLevel string `json:"collaboration_level" form:"collaboration_level" gorm:"column:collaboration_level;type:varchar(255)"`
	Description        string `json:"description" form:"description" gorm:"column:description;type:text"`
	LogoFile           string `json:"logo_file" form:"-" gorm:"column:logo_file;type:varchar(512)"`
	Status             string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}

// Association is a registered non-governmental association.
type Association struct {
	gorm.Model
	Name                  string `json:"name" form:"name" validate:"required" gorm:"column:name;type:varchar(255)"`
	Type                  string `json:"type" form:"type" validate:"required" gorm:"column:type;type:varchar(100)"`
	MainActivityArea      string `json:"main_activity_area" form:"main_activity_area" validate:"required" gorm:"column:main_activity_area;type:varchar(255)"`
	MissionAndVision      string `json:"mission_and_vision" form:"mission_and_vision" gorm:"column:mission_and_vision;type:text"`
	EstablishmentDate     string `json:"establishment_date" form:"establishment_date" gorm:"column:establishment_date;type:varchar(50)"`
	RegistrationNumber    string `json:"registration_number" form:"registration_number" gorm:"column:registration_number;type:varchar(100)"`
	ContactPhoneNumber    string `json:"contact_phone_number" form:"contact_phone_number" validate:"required" gorm:"column:contact_phone_number;type:varchar(20)"`
	Email                 string `json:"email" form:"email" validate:"omitempty,email" gorm:"column:email;type:varchar(191)"`
	Website               string `json:"website" form:"website" validate:"omitempty,url" gorm:"column:website;type:varchar(255)"`
	State                 string `json:"state" form:"state" validate:"required" gorm:"column:state;type:varchar(100)"`
	City                  string `json:"city" form:"city" validate:"required" gorm:"column:city;type:varchar(100)"`
	County                string `json:"county" form:"county" validate:"required" gorm:"column:county;type:varchar(100)"`
	AddressDetail         string `json:"address_detail" form:"address_detail" validate:"required" gorm:"column:address_detail;type:text"`
	HeadPersonName        string `json:"head_person_name" form:"head_person_name" validate:"required" gorm:"column:head_person_name;type:varchar(255)"`
	HeadPersonPhone       string `json:"head_person_phone" form:"head_person_phone" validate:"required" gorm:"column:head_person_phone;type:varchar(20)"`
	EstimatedMembersCount int    `json:"estimated_members_count" form:"estimated_members_count" validate:"omitempty,gte=0" gorm:"column:estimated_members_count"`
	MembershipProcess     string `json:"membership_process" form:"membership_process" gorm:"column:membership_process;type:text"`
	CurrentNeeds          string `json:"current_needs" form:"current_needs" gorm:"column:current_needs;type:text"`
	LogoFile              string `json:"logo_file" form:"-" gorm:"column:logo_file;type:varchar(512)"`
	Description           string `json:"description" form:"description" gorm:"column:description;type:text"`
	Status                string `json:"status" form:"-" gorm:"column:status;type:varchar(50);default:pending"`
}
