package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// ApplicationStatus is the review state of an exhibitor profile.  Any
// state may be relabeled to any other.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// DefaultExhibitorLogo is used when a profile is created without a logo.
const DefaultExhibitorLogo = "https://www.shutterstock.com/image-vector/image-icon-trendy-flat-style-600nw-643080895.jpg"

// Exhibitor is the company profile owned by exactly one exhibitor user.
// UserID is unique across the collection.
type Exhibitor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"`
	CompanyName        string             `bson:"companyName" json:"companyName"`
	ProductsOrServices string             `bson:"productsOrServices" json:"productsOrServices"`
	ContactInfo        string             `bson:"contactInfo" json:"contactInfo"`
	Logo               string             `bson:"logo" json:"logo"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Documents          []string           `bson:"documents" json:"documents"`
	ApplicationStatus  ApplicationStatus  `bson:"applicationStatus" json:"applicationStatus"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (x *Exhibitor) Validate() error {
	switch {
	case x.UserID.IsZero():
		return apperr.Validation("userId is required")
	case strings.TrimSpace(x.CompanyName) == "":
		return apperr.Validation("companyName is required")
	case strings.TrimSpace(x.ProductsOrServices) == "":
		return apperr.Validation("productsOrServices is required")
	case strings.TrimSpace(x.ContactInfo) == "":
		return apperr.Validation("contactInfo is required")
	case !x.ApplicationStatus.Valid():
		return apperr.Validation("applicationStatus must be pending, approved or rejected")
	}
	return nil
}

// Matches reports whether the profile matches a free-text search over the
// company name, description and products (case insensitive).
func (x *Exhibitor) Matches(search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(x.CompanyName), q) ||
		strings.Contains(strings.ToLower(x.Description), q) ||
		strings.Contains(strings.ToLower(x.ProductsOrServices), q)
}

// ExhibitorPatch enumerates the mutable profile fields.  ApplicationStatus
// is only honored for administrators; the service rejects it otherwise.
type ExhibitorPatch struct {
	CompanyName        *string            `json:"companyName"`
	ProductsOrServices *string            `json:"productsOrServices"`
	ContactInfo        *string            `json:"contactInfo"`
	Logo               *string            `json:"logo"`
	Description        *string            `json:"description"`
	Documents          *[]string          `json:"documents"`
	ApplicationStatus  *ApplicationStatus `json:"applicationStatus"`
}

func (p ExhibitorPatch) Apply(x *Exhibitor) error {
	if p.CompanyName != nil {
		x.CompanyName = strings.TrimSpace(*p.CompanyName)
	}
	if p.ProductsOrServices != nil {
		x.ProductsOrServices = strings.TrimSpace(*p.ProductsOrServices)
	}
	if p.ContactInfo != nil {
		x.ContactInfo = strings.TrimSpace(*p.ContactInfo)
	}
	if p.Logo != nil {
		x.Logo = strings.TrimSpace(*p.Logo)
	}
	if p.Description != nil {
		x.Description = *p.Description
	}
	if p.Documents != nil {
		x.Documents = append([]string(nil), (*p.Documents)...)
	}
	if p.ApplicationStatus != nil {
		x.ApplicationStatus = ApplicationStatus(strings.ToLower(string(*p.ApplicationStatus)))
	}
	return x.Validate()
}
