package models

import "time"

type ClientGroup struct {
	ID          string             `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Type        string             `json:"type" bson:"type"`
	Status      string             `json:"status,omitempty" bson:"status,omitempty"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive    bool               `json:"is_active" bson:"isActive"`
	FirstSeenAt *time.Time         `json:"first_seen_at,omitempty" bson:"firstSeenAt,omitempty"`
	ReferredBy  string             `json:"referred_by,omitempty" bson:"referredBy,omitempty"`
	Memberships []ClientMembership `json:"memberships" bson:"memberships"`
}

type ClientMembership struct {
	ClientID                string    `json:"client_id" bson:"clientId"`
	ClientGroupID           string    `json:"client_group_id" bson:"clientGroupId"`
	CreatedAt               time.Time `json:"created_at" bson:"createdAt"`
	Type                    string    `json:"type" bson:"type"`
	Role                    *string   `json:"role" bson:"role"`
	IsContactOnly           bool      `json:"is_contact_only" bson:"isContactOnly"`
	IsResponsibleForBilling *bool     `json:"is_responsible_for_billing" bson:"isResponsibleForBilling"`
	Client                  Client    `json:"client" bson:"client"`
}

type Client struct {
	ID                      string          `json:"id" bson:"id"`
	LegalFirstName          string          `json:"legal_first_name" bson:"legalFirstName"`
	LegalLastName           string          `json:"legal_last_name" bson:"legalLastName"`
	PreferredName           *string         `json:"preferred_name,omitempty" bson:"preferredName,omitempty"`
	MiddleName              *string         `json:"middle_name,omitempty" bson:"middleName,omitempty"`
	Suffix                  *string         `json:"suffix,omitempty" bson:"suffix,omitempty"`
	DateOfBirth             *time.Time      `json:"date_of_birth,omitempty" bson:"dateOfBirth,omitempty"`
	IsActive                bool            `json:"is_active" bson:"isActive"`
	ReceiveReminders        bool            `json:"receive_reminders" bson:"receiveReminders"`
	HasPortalAccess         bool            `json:"has_portal_access" bson:"hasPortalAccess"`
	LastLoginAt             *time.Time      `json:"last_login_at,omitempty" bson:"lastLoginAt,omitempty"`
	IsResponsibleForBilling bool            `json:"is_responsible_for_billing" bson:"isResponsibleForBilling"`
	Contacts                []ClientContact `json:"contacts" bson:"contacts"`
	Profile                 *ClientProfile  `json:"profile,omitempty" bson:"profile,omitempty"`
	Addresses               []ClientAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`
}

type ClientContact struct {
	ID          string `json:"id" bson:"id"`
	Value       string `json:"value" bson:"value"`
	ContactType string `json:"contact_type" bson:"contactType"`
	Type        string `json:"type,omitempty" bson:"type,omitempty"`
	Permission  string `json:"permission,omitempty" bson:"permission,omitempty"`
	IsPrimary   bool   `json:"is_primary" bson:"isPrimary"`
}

type ClientProfile struct {
	ID                 string  `json:"id" bson:"id"`
	Gender             *string `json:"gender,omitempty" bson:"gender,omitempty"`
	GenderIdentity     *string `json:"gender_identity,omitempty" bson:"genderIdentity,omitempty"`
	RelationshipStatus *string `json:"relationship_status,omitempty" bson:"relationshipStatus,omitempty"`
	EmploymentStatus   *string `json:"employment_status,omitempty" bson:"employmentStatus,omitempty"`
	RaceEthnicity      *string `json:"race_ethnicity,omitempty" bson:"raceEthnicity,omitempty"`
	PreferredLanguage  *string `json:"preferred_language,omitempty" bson:"preferredLanguage,omitempty"`
	Notes              *string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type ClientAddress struct {
	ID           string `json:"id" bson:"id"`
	AddressLine1 string `json:"address_line1" bson:"addressLine1"`
	AddressLine2 string `json:"address_line2" bson:"addressLine2"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	ZipCode      string `json:"zip_code" bson:"zipCode"`
	Country      string `json:"country" bson:"country"`
	IsPrimary    bool   `json:"is_primary" bson:"isPrimary"`
}

type ClientGroupTab struct {
	Value string `json:"value"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ClientGroupEditView struct {
	Loading     bool             `json:"loading"`
	ClientGroup *ClientGroup     `json:"client_group"`
	TypeLabel   string           `json:"type_label"`
	Heading     string           `json:"heading"`
	ActiveTab   string           `json:"active_tab"`
	Tabs        []ClientGroupTab `json:"tabs"`
}

type ClientGroupTabChange struct {
	ActiveTab string `json:"active_tab"`
	URL       string `json:"url"`
	Scroll    bool   `json:"scroll"`
}
