// Package handler wires the HTTP API: route registration, session
// middleware and the request/response shapes for every service.
package handler

import (
	"context"

	"railassist/backend/internal/attachment"
	"railassist/backend/internal/auth"
	"railassist/backend/internal/complaint"
	"railassist/backend/internal/notify"
	"railassist/backend/internal/support"
	"railassist/backend/internal/telephony"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventSource taps the lifecycle event stream for websocket clients.
// *storage.Service satisfies it.
type EventSource interface {
	SubscribeEvents(ctx context.Context) *redis.PubSub
}

type Handler struct {
	Auth        *auth.Service
	Complaints  *complaint.Service
	Attachments *attachment.Service
	Notify      *notify.Pipeline
	Support     *support.Service
	Phone       *telephony.Service
	Events      EventSource
	Log         *zap.Logger
}

func NewHandler(
	authSvc *auth.Service,
	complaints *complaint.Service,
	attachments *attachment.Service,
	notifySvc *notify.Pipeline,
	supportSvc *support.Service,
	phone *telephony.Service,
	events EventSource,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Auth:        authSvc,
		Complaints:  complaints,
		Attachments: attachments,
		Notify:      notifySvc,
		Support:     supportSvc,
		Phone:       phone,
		Events:      events,
		Log:         log,
	}
}

// RegisterRoutes sets up the full route table.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("")
	authed.Use(h.RequireAuth())
	{
		authed.POST("/complaints", h.SubmitComplaint)
		authed.GET("/complaints", h.ListComplaints)
		authed.GET("/complaints/:id", h.GetComplaint)
		authed.PATCH("/complaints/:id/status", h.RequireAdmin(), h.UpdateComplaintStatus)

		authed.POST("/complaints/:id/attachments", h.AddAttachment)
		authed.GET("/complaints/:id/attachments", h.ListAttachments)

		authed.POST("/complaints/:id/messages", h.PostMessage)
		authed.GET("/complaints/:id/messages", h.GetThread)

		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)

		authed.GET("/support/contacts", h.ListEmergencyContacts)
		authed.GET("/support/faqs", h.ListFAQs)

		authed.POST("/assistant", h.AskAssistant)
		authed.POST("/call", h.PlaceCall)
	}

	r.GET("/ws/notifications", h.ServeNotificationStream)
}
