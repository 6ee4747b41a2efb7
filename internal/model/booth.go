package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// BoothStatus is derived from the booth assignment and never set directly.
type BoothStatus string

const (
	BoothAvailable BoothStatus = "available"
	BoothReserved  BoothStatus = "reserved"
)

func (s BoothStatus) Valid() bool { return s == BoothAvailable || s == BoothReserved }

// FloorLocation is the fixed set of floors a booth can be placed on.
type FloorLocation string

const (
	FloorFirst    FloorLocation = "First Floor"
	FloorSecond   FloorLocation = "Second Floor"
	FloorThird    FloorLocation = "Third Floor"
	FloorBasement FloorLocation = "Basement"
)

func (l FloorLocation) Valid() bool {
	switch l {
	case FloorFirst, FloorSecond, FloorThird, FloorBasement:
		return true
	}
	return false
}

// Booth is a numbered stand of an expo, optionally assigned to an
// exhibitor profile.  Status is reserved exactly when ExhibitorID is set.
type Booth struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ExpoID      primitive.ObjectID  `bson:"expoId" json:"expoId"`
	BoothNumber string              `bson:"boothNumber" json:"boothNumber"`
	ExhibitorID *primitive.ObjectID `bson:"exhibitorId" json:"exhibitorId"`
	Location    FloorLocation       `bson:"location" json:"location"`
	Status      BoothStatus         `bson:"status" json:"status"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DeriveBoothStatus maps an assignment to its status.
func DeriveBoothStatus(exhibitorID *primitive.ObjectID) BoothStatus {
	if exhibitorID != nil && !exhibitorID.IsZero() {
		return BoothReserved
	}
	return BoothAvailable
}

// Assign sets the exhibitor (nil releases the booth) and recomputes Status.
func (b *Booth) Assign(exhibitorID *primitive.ObjectID) {
	if exhibitorID != nil && exhibitorID.IsZero() {
		exhibitorID = nil
	}
	if exhibitorID != nil {
		id := *exhibitorID
		exhibitorID = &id
	}
	b.ExhibitorID = exhibitorID
	b.Status = DeriveBoothStatus(exhibitorID)
}

// AssignedTo reports whether the booth is held by the given exhibitor.
func (b *Booth) AssignedTo(exhibitorID primitive.ObjectID) bool {
	return b.ExhibitorID != nil && *b.ExhibitorID == exhibitorID
}

func (b *Booth) Validate() error {
	switch {
	case b.ExpoID.IsZero():
		return apperr.Validation("expoId is required")
	case strings.TrimSpace(b.BoothNumber) == "":
		return apperr.Validation("boothNumber is required")
	case !b.Location.Valid():
		return apperr.Validation("location must be one of First Floor, Second Floor, Third Floor, Basement")
	case b.Status != DeriveBoothStatus(b.ExhibitorID):
		return apperr.Validation("booth status does not match its assignment")
	}
	return nil
}

// NullableID distinguishes an absent JSON key from an explicit null (or
// empty string), both of which matter for booth assignment.
type NullableID struct {
	Set   bool
	Value *primitive.ObjectID
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	n.Value = nil
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return apperr.Validation("exhibitorId must be a string or null")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return apperr.Validation("exhibitorId is not a valid id")
	}
	n.Value = &id
	return nil
}

// BoothPatch enumerates the mutable fields of a booth.  Status is accepted
// for compatibility but always overridden by the derived value.
type BoothPatch struct {
	BoothNumber *string        `json:"boothNumber"`
	Location    *FloorLocation `json:"location"`
	ExhibitorID NullableID     `json:"exhibitorId"`
	Status      *BoothStatus   `json:"status"`
}

// OnlyAssignment reports whether the patch touches nothing but the
// assignment (an explicit status is tolerated since it is re-derived).
func (p BoothPatch) OnlyAssignment() bool {
	return p.BoothNumber == nil && p.Location == nil
}

// Apply copies the set fields onto b and re-derives Status from the
// resulting assignment.
func (p BoothPatch) Apply(b *Booth) error {
	if p.BoothNumber != nil {
		b.BoothNumber = strings.TrimSpace(*p.BoothNumber)
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.Status != nil && !p.Status.Valid() {
		return apperr.Validation("status must be available or reserved")
	}
	if p.ExhibitorID.Set {
		b.Assign(p.ExhibitorID.Value)
	} else {
		b.Assign(b.ExhibitorID)
	}
	return b.Validate()
}
