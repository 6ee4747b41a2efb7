package router

import (
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/policy"
)

// catalog registers expos, sessions, exhibitor profiles and booths.
// Reads are public; writes need the roles of the matching policy op.
func (r routes) catalog(x *handler.ExpoHandler, ex *handler.ExhibitorHandler) {
	// ---- Expos ----
	expos := r.v1.Group("/expos")
	expos.GET("", x.ListExpos, r.cache)
	expos.GET("/:id", x.GetExpo)
	expos.POST("", x.CreateExpo, r.guard(policy.WriteExpo)...)
	expos.PUT("/:id", x.UpdateExpo, r.guard(policy.WriteExpo)...)
	expos.DELETE("/:id", x.DeleteExpo, r.guard(policy.WriteExpo)...)

	// ---- Sessions ----
	sessions := r.v1.Group("/sessions")
	sessions.GET("", x.ListSessions, r.cache)
	sessions.GET("/:id", x.GetSession)
	sessions.POST("", x.CreateSession, r.guard(policy.WriteSession)...)
	sessions.PUT("/:id", x.UpdateSession, r.guard(policy.WriteSession)...)
	sessions.DELETE("/:id", x.DeleteSession, r.guard(policy.WriteSession)...)

	// ---- Exhibitors ----
	exh := r.v1.Group("/exhibitors")
	exh.GET("", ex.List, r.cache)
	exh.GET("/user/:userId", ex.GetByUser)
	exh.GET("/:id", ex.Get)
	exh.POST("", ex.Create, r.guard(policy.CreateOwnExhibitor)...)
	exh.PUT("/profile", ex.UpdateOwn, r.guard(policy.UpdateOwnExhibitor)...)
	exh.PUT("/:id", ex.Update, r.guard(policy.UpdateAnyExhibitor)...)
	exh.PUT("/:id/approve", ex.Approve, r.guard(policy.ReviewExhibitor)...)
	exh.PUT("/:id/reject", ex.Reject, r.guard(policy.ReviewExhibitor)...)
	exh.DELETE("/:id", ex.Delete, r.guard(policy.DeleteExhibitor)...)

	// ---- Booths ----
	// availability changes on every assignment, so it is never cached
	booths := r.v1.Group("/booths")
	booths.GET("/available", ex.AvailableBooths)
	booths.GET("/reserved", ex.ReservedBooths)
	booths.GET("/my", ex.MyBooths, r.guard(policy.ListOwnBooths)...)
	booths.GET("/:id", ex.GetBooth)
	booths.POST("", ex.CreateBooth, r.guard(policy.CreateBooth)...)
	booths.PUT("/:id", ex.UpdateBooth, r.guard(policy.UpdateBooth)...)
	booths.DELETE("/:id", ex.DeleteBooth, r.guard(policy.DeleteBooth)...)
}
