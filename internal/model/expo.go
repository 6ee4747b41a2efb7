package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// Expo is the root aggregate for sessions and booths.  Exhibitors is a
// denormalized roster of exhibitor users registered for the expo; the
// authoritative registration lives on User.RegisteredExpos.
type Expo struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Theme       string               `bson:"theme" json:"theme"`
	Date        time.Time            `bson:"date" json:"date"`
	Location    string               `bson:"location" json:"location"`
	Exhibitors  []primitive.ObjectID `bson:"exhibitors" json:"exhibitors"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func (e *Expo) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return apperr.Validation("title is required")
	case strings.TrimSpace(e.Description) == "":
		return apperr.Validation("description is required")
	case strings.TrimSpace(e.Theme) == "":
		return apperr.Validation("theme is required")
	case e.Date.IsZero():
		return apperr.Validation("date is required")
	case strings.TrimSpace(e.Location) == "":
		return apperr.Validation("location is required")
	}
	return nil
}

// ExpoPatch enumerates the mutable fields of an expo.
type ExpoPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Theme       *string    `json:"theme"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
}

// Apply copies the set fields onto e and re-validates the result.
func (p ExpoPatch) Apply(e *Expo) error {
	if p.Title != nil {
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.Theme != nil {
		e.Theme = strings.TrimSpace(*p.Theme)
	}
	if p.Date != nil {
		e.Date = p.Date.UTC()
	}
	if p.Location != nil {
		e.Location = strings.TrimSpace(*p.Location)
	}
	return e.Validate()
}
