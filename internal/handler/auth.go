package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/service"
)

// AuthHandler serves account, credential and registration endpoints.
// ExposeResetToken returns reset tokens in the response body; it is only
// enabled in development where no mailer delivers them.
type AuthHandler struct {
	Svc              *service.Service
	ExposeResetToken bool
}

func NewAuthHandler(svc *service.Service, exposeResetToken bool) *AuthHandler {
	return &AuthHandler{Svc: svc, ExposeResetToken: exposeResetToken}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type forgotReq struct {
	Email string `json:"email"`
}

type resetReq struct {
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User    *model.User `json:"user"`
	Access  tokenPart   `json:"access"`
	Refresh tokenPart   `json:"refresh"`
}

func authResponse(res *service.AuthResult) authResp {
	return authResp{
		User:    res.User,
		Access:  tokenPart{Token: res.Access.Token, Expires: res.Access.Exp},
		Refresh: tokenPart{Token: res.Refresh.Raw, Expires: res.Refresh.Exp},
	}
}

// Register creates an exhibitor or attendee account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	u, err := h.Svc.CreateUser(c.Request().Context(), actor(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "user registered", "user": u})
}

// Login verifies credentials and returns a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	res, err := h.Svc.Authenticate(c.Request().Context(), actor(c), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, authResponse(res))
}

// Refresh rotates the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	res, err := h.Svc.Refresh(c.Request().Context(), actor(c), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, authResponse(res))
}

// Logout revokes one refresh token, or all of the caller's when the body
// is empty.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := bindOptionalJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.Logout(c.Request().Context(), actor(c), req.RefreshToken); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	token, err := h.Svc.RequestPasswordReset(c.Request().Context(), actor(c), req.Email)
	if err != nil {
		return writeError(c, err)
	}
	body := echo.Map{"message": "password reset requested"}
	if h.ExposeResetToken {
		body["resetToken"] = token
	}
	return c.JSON(http.StatusOK, body)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.ApplyPasswordReset(c.Request().Context(), actor(c), c.Param("token"), req.Password); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "password has been reset")
}

func (h *AuthHandler) Profile(c echo.Context) error {
	u, err := h.Svc.GetProfile(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var patch model.ProfilePatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	u, err := h.Svc.UpdateProfile(c.Request().Context(), actor(c), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	if err := h.Svc.DeleteOwnAccount(c.Request().Context(), actor(c)); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "account deleted")
}

func (h *AuthHandler) RegisterExpo(c echo.Context) error {
	id, err := parseID(c, "expoId")
	if err != nil {
		return writeError(c, err)
	}
	u, err := h.Svc.RegisterForExpo(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "registered for expo", "user": u})
}

func (h *AuthHandler) RegisterSession(c echo.Context) error {
	id, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, err)
	}
	u, err := h.Svc.RegisterForSession(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "registered for session", "user": u})
}

// Users lists attendee accounts.
func (h *AuthHandler) Users(c echo.Context) error {
	list, err := h.Svc.ListUsers(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

// Exhibitors lists exhibitor accounts.
func (h *AuthHandler) Exhibitors(c echo.Context) error {
	list, err := h.Svc.ListExhibitorUsers(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteUser(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "user deleted")
}

// Admin returns the contact of the administrator users can message.
func (h *AuthHandler) Admin(c echo.Context) error {
	sum, err := h.Svc.GetAdminContact(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
