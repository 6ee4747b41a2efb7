package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/queue"
	"github.com/iliyamo/expo-management/internal/utils"
)

// RegisterInput is the payload of account creation.
type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	ProfileImg string `json:"profileImg"`
	Role       string `json:"role"`
}

// AuthResult is returned by login and token refresh.
type AuthResult struct {
	User    *model.User
	Access  utils.AccessToken
	Refresh utils.RefreshToken
}

// CreateUser registers an exhibitor or attendee.  Administrators are only
// created out of band through CreateAdmin.
func (s *Service) CreateUser(ctx context.Context, actor policy.Actor, in RegisterInput) (*model.User, error) {
	if err := policy.Check(actor, policy.CreateUser); err != nil {
		return nil, err
	}
	role, ok := model.ParseRole(in.Role)
	if !ok {
		return nil, apperr.Validation("role must be exhibitor or attendee")
	}
	if role == model.RoleAdmin {
		return nil, apperr.Forbidden("administrators cannot self-register")
	}
	return s.createUser(ctx, actor, in, role)
}

// CreateAdmin bootstraps an administrator account.  It bypasses the access
// table and is only reachable from the createadmin command.
func (s *Service) CreateAdmin(ctx context.Context, in RegisterInput) (*model.User, error) {
	return s.createUser(ctx, policy.Anonymous, in, model.RoleAdmin)
}

func (s *Service) createUser(ctx context.Context, actor policy.Actor, in RegisterInput, role model.Role) (*model.User, error) {
	if err := utils.CheckPassword(in.Password); err != nil {
		return nil, apperr.Validation("%s", passwordMsg(err))
	}
	u := &model.User{
		Username:   strings.TrimSpace(in.Username),
		Email:      model.NormalizeEmail(in.Email),
		Address:    strings.TrimSpace(in.Address),
		ProfileImg: strings.TrimSpace(in.ProfileImg),
		Role:       role,
	}
	if u.ProfileImg == "" {
		u.ProfileImg = model.DefaultProfileImg
	}
	if strings.TrimSpace(in.Gender) != "" {
		g, ok := model.ParseGender(in.Gender)
		if !ok {
			return nil, apperr.Validation("gender must be male or female")
		}
		u.Gender = g
	}
	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperr.Internal(err, "hash password failed")
	}
	u.PasswordHash = hash
	if err := u.Validate(); err != nil {
		return nil, err
	}

	_, err = query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByEmail(ctx, u.Email)
	})
	switch {
	case err == nil:
		return nil, apperr.Conflict("email already registered")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	err = s.exec(ctx, "user", func(ctx context.Context) error { return s.store.Users.Insert(ctx, u) })
	if errors.Is(err, apperr.ErrConflict) {
		return nil, apperr.Conflict("email already registered")
	}
	if err != nil {
		return nil, err
	}
	s.metrics.IncUserCreated(string(u.Role))
	s.publish(ctx, queue.NewEvent(queue.EventUserCreated, u.ID.Hex(), actorID(actor),
		map[string]string{"role": string(u.Role)}))
	return u, nil
}

func passwordMsg(err error) string {
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "password must be at most 72 bytes"
	}
	return "password must be at least 6 characters"
}

func actorID(a policy.Actor) string {
	if a.ID.IsZero() {
		return ""
	}
	return a.ID.Hex()
}

// Authenticate verifies the credentials and issues an access/refresh pair.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, actor policy.Actor, email, password string) (*AuthResult, error) {
	if err := policy.Check(actor, policy.Authenticate); err != nil {
		return nil, err
	}
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	u, err := query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByEmail(ctx, email)
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	return s.issue(ctx, u)
}

// issue signs a new access token and stores the hash of a new refresh token.
func (s *Service) issue(ctx context.Context, u *model.User) (*AuthResult, error) {
	now := s.now()
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, u.ID.Hex(), string(u.Role), s.cfg.AccessTTL, now)
	if err != nil {
		return nil, apperr.Internal(err, "issue access token failed")
	}
	refresh, err := utils.NewRefreshToken(s.cfg.RefreshTTL, now)
	if err != nil {
		return nil, apperr.Internal(err, "issue refresh token failed")
	}
	err = s.exec(ctx, "refresh token", func(ctx context.Context) error {
		return s.tokens.StoreRefresh(ctx, u.ID.Hex(), utils.HashRefreshRaw(refresh.Raw), refresh.Exp)
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Access: access, Refresh: refresh}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued for its owner.
func (s *Service) Refresh(ctx context.Context, actor policy.Actor, raw string) (*AuthResult, error) {
	if err := policy.Check(actor, policy.RefreshToken); err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperr.Validation("refresh_token is required")
	}
	hash := utils.HashRefreshRaw(raw)
	uid, err := query(ctx, s, "refresh token", func(ctx context.Context) (string, error) {
		return s.tokens.ValidateRefresh(ctx, hash)
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}
	if err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "refresh token", func(ctx context.Context) error {
		return s.tokens.RevokeByHash(ctx, hash)
	}); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}
	u, err := query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByID(ctx, id)
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, u)
}

// Logout revokes the given refresh token, or every token of the actor when
// raw is empty.  A token owned by someone else is rejected.
func (s *Service) Logout(ctx context.Context, actor policy.Actor, raw string) error {
	if err := policy.Check(actor, policy.Logout); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.exec(ctx, "refresh token", func(ctx context.Context) error {
			return s.tokens.RevokeAllForUser(ctx, actor.ID.Hex())
		})
	}
	hash := utils.HashRefreshRaw(raw)
	uid, err := query(ctx, s, "refresh token", func(ctx context.Context) (string, error) {
		return s.tokens.ValidateRefresh(ctx, hash)
	})
	if err != nil {
		return err
	}
	if uid != actor.ID.Hex() {
		return apperr.Forbidden("refresh token belongs to another user")
	}
	return s.exec(ctx, "refresh token", func(ctx context.Context) error {
		return s.tokens.RevokeByHash(ctx, hash)
	})
}

// RequestPasswordReset stores a fresh reset token on the account and
// returns it; delivering it to the user is left to the caller.
func (s *Service) RequestPasswordReset(ctx context.Context, actor policy.Actor, email string) (string, error) {
	if err := policy.Check(actor, policy.RequestPasswordReset); err != nil {
		return "", err
	}
	email = model.NormalizeEmail(email)
	if email == "" {
		return "", apperr.Validation("email is required")
	}
	u, err := query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByEmail(ctx, email)
	})
	if err != nil {
		return "", err
	}
	token, err := utils.NewResetToken()
	if err != nil {
		return "", apperr.Internal(err, "generate reset token failed")
	}
	exp := s.now().Add(s.cfg.ResetTokenTTL)
	if err := s.exec(ctx, "user", func(ctx context.Context) error {
		return s.store.Users.SetResetToken(ctx, u.ID, token, exp)
	}); err != nil {
		return "", err
	}
	return token, nil
}

// ApplyPasswordReset sets a new password for the holder of an unexpired
// reset token, clears the token and revokes every refresh token.
func (s *Service) ApplyPasswordReset(ctx context.Context, actor policy.Actor, token, password string) error {
	if err := policy.Check(actor, policy.ApplyPasswordReset); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return apperr.Validation("invalid or expired token")
	}
	if err := utils.CheckPassword(password); err != nil {
		return apperr.Validation("%s", passwordMsg(err))
	}
	u, err := query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByResetToken(ctx, token, s.now())
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Validation("invalid or expired token")
	}
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return apperr.Internal(err, "hash password failed")
	}
	if err := s.exec(ctx, "user", func(ctx context.Context) error { return s.store.Users.SetPassword(ctx, u.ID, hash) }); err != nil {
		return err
	}
	if err := s.exec(ctx, "refresh token", func(ctx context.Context) error {
		return s.tokens.RevokeAllForUser(ctx, u.ID.Hex())
	}); err != nil {
		s.log.Warn().Err(err).Str("user", u.ID.Hex()).Msg("revoke refresh tokens after reset failed")
	}
	return nil
}
