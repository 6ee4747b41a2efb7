package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// BoothInput is the payload of booth creation.  Status is derived from
// ExhibitorID.
type BoothInput struct {
	ExpoID      primitive.ObjectID  `json:"expoId"`
	BoothNumber string              `json:"boothNumber"`
	ExhibitorID *primitive.ObjectID `json:"exhibitorId"`
	Location    model.FloorLocation `json:"location"`
}

// ReservedBooth is a reserved booth with the profile holding it.
type ReservedBooth struct {
	*model.Booth
	Exhibitor *model.Exhibitor `json:"exhibitor,omitempty"`
}

func (s *Service) ListAvailableBooths(ctx context.Context, actor policy.Actor) ([]*model.Booth, error) {
	if err := policy.Check(actor, policy.ReadBoothAvailable); err != nil {
		return nil, err
	}
	return s.boothsByStatus(ctx, false)
}

// ListReservedBooths returns reserved booths with their exhibitor profile
// attached.  A profile that vanished leaves Exhibitor nil.
func (s *Service) ListReservedBooths(ctx context.Context, actor policy.Actor) ([]ReservedBooth, error) {
	if err := policy.Check(actor, policy.ReadBoothAvailable); err != nil {
		return nil, err
	}
	booths, err := s.boothsByStatus(ctx, true)
	if err != nil {
		return nil, err
	}
	profiles := map[primitive.ObjectID]*model.Exhibitor{}
	out := make([]ReservedBooth, 0, len(booths))
	for _, b := range booths {
		rb := ReservedBooth{Booth: b}
		if b.ExhibitorID != nil {
			x, ok := profiles[*b.ExhibitorID]
			if !ok {
				x, err = s.findExhibitor(ctx, *b.ExhibitorID)
				if err != nil && !isNotFound(err) {
					return nil, err
				}
				profiles[*b.ExhibitorID] = x
			}
			rb.Exhibitor = x
		}
		out = append(out, rb)
	}
	return out, nil
}

func (s *Service) boothsByStatus(ctx context.Context, reserved bool) ([]*model.Booth, error) {
	return query(ctx, s, "booth", func(ctx context.Context) ([]*model.Booth, error) {
		return s.store.Booths.ListByStatus(ctx, reserved)
	})
}

func (s *Service) GetBooth(ctx context.Context, actor policy.Actor, id primitive.ObjectID) (*model.Booth, error) {
	if err := policy.Check(actor, policy.ReadBoothAvailable); err != nil {
		return nil, err
	}
	return s.findBooth(ctx, id)
}

func (s *Service) findBooth(ctx context.Context, id primitive.ObjectID) (*model.Booth, error) {
	return query(ctx, s, "booth", func(ctx context.Context) (*model.Booth, error) {
		return s.store.Booths.FindByID(ctx, id)
	})
}

// ListMyBooths returns the booths held by the caller's exhibitor profile.
func (s *Service) ListMyBooths(ctx context.Context, actor policy.Actor) ([]*model.Booth, error) {
	if err := policy.Check(actor, policy.ListOwnBooths); err != nil {
		return nil, err
	}
	x, err := s.exhibitorOf(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return query(ctx, s, "booth", func(ctx context.Context) ([]*model.Booth, error) {
		return s.store.Booths.ListByExhibitor(ctx, x.ID)
	})
}

var errBoothNumberTaken = apperr.Conflict("boothNumber already exists")

func (s *Service) CreateBooth(ctx context.Context, actor policy.Actor, in BoothInput) (*model.Booth, error) {
	if err := policy.Check(actor, policy.CreateBooth); err != nil {
		return nil, err
	}
	b := &model.Booth{
		ExpoID:      in.ExpoID,
		BoothNumber: strings.TrimSpace(in.BoothNumber),
		Location:    in.Location,
	}
	b.Assign(in.ExhibitorID)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.findExpo(ctx, b.ExpoID); err != nil {
		return nil, err
	}
	if b.ExhibitorID != nil {
		if _, err := s.findExhibitor(ctx, *b.ExhibitorID); err != nil {
			return nil, err
		}
	}
	err := s.exec(ctx, "booth", func(ctx context.Context) error { return s.store.Booths.Insert(ctx, b) })
	if isConflict(err) {
		return nil, errBoothNumberTaken
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBooth applies patch and re-derives the status from the resulting
// assignment.  Exhibitors may only change the assignment, and only to take
// a free booth for their own profile or to release one they hold.
func (s *Service) UpdateBooth(ctx context.Context, actor policy.Actor, id primitive.ObjectID, patch model.BoothPatch) (*model.Booth, error) {
	if err := policy.Check(actor, policy.UpdateBooth); err != nil {
		return nil, err
	}
	b, err := s.findBooth(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == model.RoleExhibitor {
		if err := s.checkOwnAssignment(ctx, actor, b, patch); err != nil {
			return nil, err
		}
	}
	if patch.ExhibitorID.Set && patch.ExhibitorID.Value != nil && !b.AssignedTo(*patch.ExhibitorID.Value) {
		if _, err := s.findExhibitor(ctx, *patch.ExhibitorID.Value); err != nil {
			return nil, err
		}
	}
	if err := patch.Apply(b); err != nil {
		return nil, err
	}
	err = s.exec(ctx, "booth", func(ctx context.Context) error { return s.store.Booths.Update(ctx, b) })
	if isConflict(err) {
		return nil, errBoothNumberTaken
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) checkOwnAssignment(ctx context.Context, actor policy.Actor, b *model.Booth, patch model.BoothPatch) error {
	if !patch.OnlyAssignment() {
		return apperr.Forbidden("exhibitors may only change the booth assignment")
	}
	if !patch.ExhibitorID.Set {
		return apperr.Validation("exhibitorId is required")
	}
	own, err := s.exhibitorOf(ctx, actor.ID)
	if err != nil {
		return err
	}
	if b.ExhibitorID != nil && !b.AssignedTo(own.ID) {
		return apperr.Conflict("booth is reserved by another exhibitor")
	}
	if v := patch.ExhibitorID.Value; v != nil && *v != own.ID {
		return apperr.Forbidden("exhibitors may only assign booths to their own profile")
	}
	return nil
}

func (s *Service) DeleteBooth(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.DeleteBooth); err != nil {
		return err
	}
	return s.exec(ctx, "booth", func(ctx context.Context) error { return s.store.Booths.Delete(ctx, id) })
}
