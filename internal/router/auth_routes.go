package router

import (
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/policy"
)

// auth registers /v1/auth.  Registration, login, refresh and the password
// reset flow are anonymous; everything else needs a bearer token.
func (r routes) auth(a *handler.AuthHandler) {
	g := r.v1.Group("/auth")

	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/forgot-password", a.ForgotPassword)
	g.POST("/reset-password/:token", a.ResetPassword)

	g.POST("/logout", a.Logout, r.guard(policy.Logout)...)
	g.GET("/profile", a.Profile, r.guard(policy.GetOwnProfile)...)
	g.PUT("/update-profile", a.UpdateProfile, r.guard(policy.UpdateOwnProfile)...)
	g.DELETE("/delete-account", a.DeleteAccount, r.guard(policy.DeleteOwnAccount)...)
	g.POST("/register-expo/:expoId", a.RegisterExpo, r.guard(policy.RegisterForExpo)...)
	g.POST("/register-session/:sessionId", a.RegisterSession, r.guard(policy.RegisterForSession)...)
	g.GET("/users", a.Users, r.guard(policy.ListUsers)...)
	g.GET("/exhibitors", a.Exhibitors, r.guard(policy.ListExhibitorUsers)...)
	g.DELETE("/users/:id", a.DeleteUser, r.guard(policy.DeleteUser)...)
	g.GET("/admin", a.Admin, r.guard(policy.GetAdminContact)...)
}
