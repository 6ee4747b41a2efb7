package router

import (
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/policy"
)

// engagement registers bookmarks, feedback and messages.  None of them
// are public.
func (r routes) engagement(h *handler.EngagementHandler) {
	bm := r.v1.Group("/bookmarks", r.guard(policy.ManageBookmarks)...)
	bm.POST("", h.CreateBookmark)
	bm.GET("", h.ListBookmarks)
	bm.DELETE("/:sessionId", h.DeleteBookmark)

	fb := r.v1.Group("/feedback")
	fb.POST("", h.SubmitFeedback, r.guard(policy.SubmitFeedback)...)
	fb.GET("", h.ListFeedback, r.guard(policy.ListFeedback)...)
	fb.DELETE("/:id", h.DeleteFeedback, r.guard(policy.DeleteFeedback)...)

	msg := r.v1.Group("/messages")
	msg.POST("/send", h.SendMessage, r.guard(policy.SendMessage)...)
	msg.GET("/attendee-to-admin", h.AttendeeMessages, r.guard(policy.ListMessagesToAdmin)...)
	msg.GET("/exhibitor-to-admin", h.ExhibitorMessages, r.guard(policy.ListMessagesToAdmin)...)
	msg.DELETE("/:id", h.DeleteMessage, r.guard(policy.DeleteMessage)...)
}

// analytics registers the admin reports.
func (r routes) analytics(h *handler.AnalyticsHandler) {
	g := r.v1.Group("/analytics", r.guard(policy.ViewAnalytics)...)
	g.GET("/expos", h.Expos)
	g.GET("/sessions", h.Sessions)
	g.GET("/dashboard", h.Dashboard)
}
