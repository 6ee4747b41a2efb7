package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/queue"
)

// ExhibitorInput is the payload of exhibitor profile creation.
type ExhibitorInput struct {
	CompanyName        string   `json:"companyName"`
	ProductsOrServices string   `json:"productsOrServices"`
	ContactInfo        string   `json:"contactInfo"`
	Logo               string   `json:"logo"`
	Description        string   `json:"description"`
	Documents          []string `json:"documents"`
}

// ListExhibitors returns profiles whose company name, description or
// products match search; an empty search returns all.
func (s *Service) ListExhibitors(ctx context.Context, actor policy.Actor, search string) ([]*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.ReadExhibitor); err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	return query(ctx, s, "exhibitor", func(ctx context.Context) ([]*model.Exhibitor, error) {
		return s.store.Exhibitors.List(ctx, search)
	})
}

func (s *Service) GetExhibitor(ctx context.Context, actor policy.Actor, id primitive.ObjectID) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.ReadExhibitor); err != nil {
		return nil, err
	}
	return s.findExhibitor(ctx, id)
}

func (s *Service) GetExhibitorByUser(ctx context.Context, actor policy.Actor, userID primitive.ObjectID) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.ReadExhibitor); err != nil {
		return nil, err
	}
	return s.exhibitorOf(ctx, userID)
}

func (s *Service) findExhibitor(ctx context.Context, id primitive.ObjectID) (*model.Exhibitor, error) {
	return query(ctx, s, "exhibitor", func(ctx context.Context) (*model.Exhibitor, error) {
		return s.store.Exhibitors.FindByID(ctx, id)
	})
}

func (s *Service) exhibitorOf(ctx context.Context, userID primitive.ObjectID) (*model.Exhibitor, error) {
	return query(ctx, s, "exhibitor profile", func(ctx context.Context) (*model.Exhibitor, error) {
		return s.store.Exhibitors.FindByUserID(ctx, userID)
	})
}

// CreateExhibitor creates the caller's company profile.  Each exhibitor
// user owns at most one; new profiles start pending review.
func (s *Service) CreateExhibitor(ctx context.Context, actor policy.Actor, in ExhibitorInput) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.CreateOwnExhibitor); err != nil {
		return nil, err
	}
	x := &model.Exhibitor{
		UserID:             actor.ID,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		ProductsOrServices: strings.TrimSpace(in.ProductsOrServices),
		ContactInfo:        strings.TrimSpace(in.ContactInfo),
		Logo:               strings.TrimSpace(in.Logo),
		Description:        in.Description,
		Documents:          append([]string{}, in.Documents...),
		ApplicationStatus:  model.ApplicationPending,
	}
	if x.Logo == "" {
		x.Logo = model.DefaultExhibitorLogo
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	_, err := s.exhibitorOf(ctx, actor.ID)
	switch {
	case err == nil:
		return nil, apperr.Conflict("exhibitor profile already exists for this user")
	case !isNotFound(err):
		return nil, err
	}
	err = s.exec(ctx, "exhibitor", func(ctx context.Context) error { return s.store.Exhibitors.Insert(ctx, x) })
	if isConflict(err) {
		return nil, apperr.Conflict("exhibitor profile already exists for this user")
	}
	if err != nil {
		return nil, err
	}
	return x, nil
}

// UpdateOwnExhibitor patches the caller's profile.  The review status is
// reserved to administrators.
func (s *Service) UpdateOwnExhibitor(ctx context.Context, actor policy.Actor, patch model.ExhibitorPatch) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.UpdateOwnExhibitor); err != nil {
		return nil, err
	}
	if patch.ApplicationStatus != nil {
		return nil, apperr.Forbidden("applicationStatus can only be changed by an administrator")
	}
	x, err := s.exhibitorOf(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.saveExhibitor(ctx, x, patch)
}

// UpdateExhibitor patches any profile, including its review status.
func (s *Service) UpdateExhibitor(ctx context.Context, actor policy.Actor, id primitive.ObjectID, patch model.ExhibitorPatch) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.UpdateAnyExhibitor); err != nil {
		return nil, err
	}
	x, err := s.findExhibitor(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.saveExhibitor(ctx, x, patch)
}

func (s *Service) saveExhibitor(ctx context.Context, x *model.Exhibitor, patch model.ExhibitorPatch) (*model.Exhibitor, error) {
	if err := patch.Apply(x); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "exhibitor", func(ctx context.Context) error { return s.store.Exhibitors.Update(ctx, x) }); err != nil {
		return nil, err
	}
	return x, nil
}

// ReviewExhibitor relabels the application status.  Any status may follow
// any other.
func (s *Service) ReviewExhibitor(ctx context.Context, actor policy.Actor, id primitive.ObjectID, status model.ApplicationStatus) (*model.Exhibitor, error) {
	if err := policy.Check(actor, policy.ReviewExhibitor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperr.Validation("applicationStatus must be pending, approved or rejected")
	}
	x, err := s.findExhibitor(ctx, id)
	if err != nil {
		return nil, err
	}
	x.ApplicationStatus = status
	if err := s.exec(ctx, "exhibitor", func(ctx context.Context) error { return s.store.Exhibitors.Update(ctx, x) }); err != nil {
		return nil, err
	}
	s.publish(ctx, queue.NewEvent(queue.EventExhibitorReview, x.ID.Hex(), actorID(actor),
		map[string]string{"status": string(status), "user": x.UserID.Hex()}))
	return x, nil
}

// DeleteExhibitor releases every booth held by the profile and deletes it.
func (s *Service) DeleteExhibitor(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.DeleteExhibitor); err != nil {
		return err
	}
	x, err := s.findExhibitor(ctx, id)
	if err != nil {
		return err
	}
	return s.removeExhibitor(ctx, actor, x)
}
