package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/login", h.login)
	api.GET("/system/health", h.healthCheck)

	// Маршруты для любой активной сессии (роль responder видит только инциденты)
	authed := api.Group("", SessionAuthMiddleware(h.authService, h.logger))
	{
		authed.POST("/logout", h.logout)
		authed.GET("/session", h.currentSession)

		authed.GET("/incidents", h.listIncidents)
		authed.GET("/incidents/stats", h.incidentStats)
		authed.POST("/incidents/refresh", h.refreshIncidents)
		authed.POST("/incidents/report", h.reportIncident)
		authed.GET("/incidents/:id", h.getIncident)
		authed.PATCH("/incidents/:id/status", h.updateIncidentStatus)
		authed.POST("/incidents/:id/notes", h.addIncidentNote)
		authed.POST("/incidents/:id/assign", h.assignResponder)
		authed.GET("/responders/available", h.availableResponders)

		authed.GET("/dispatch", h.pendingDispatches)
		authed.GET("/dispatch/:id", h.getDispatch)
		authed.POST("/dispatch/:id/retry", h.retryDispatch)
	}

	// Маршруты администратора (accesscode 127)
	admin := authed.Group("", AdminOnlyMiddleware(h.logger))
	{
		admin.DELETE("/incidents/:id", h.deleteIncident)
		admin.GET("/system/overview", h.systemOverview)

		admin.GET("/zones", h.listZones)
		admin.POST("/zones", h.createZone)
		admin.GET("/zones/stats", h.zoneStats)
		admin.POST("/zones/refresh", h.refreshZones)
		admin.PUT("/zones/:id/occupancy", h.updateZoneOccupancy)

		admin.GET("/responders", h.listResponders)
		admin.POST("/responders", h.createResponder)
		admin.GET("/responders/stats", h.responderStats)
		admin.POST("/responders/refresh", h.refreshResponders)
		admin.PUT("/responders/:id", h.updateResponder)
		admin.POST("/responders/:id/unassign", h.unassignResponder)
		admin.PUT("/responders/:id/position", h.updateResponderPosition)

		admin.GET("/contacts", h.listContacts)
		admin.POST("/contacts", h.createContact)
		admin.PUT("/contacts/:id", h.updateContact)

		admin.GET("/venue", h.getVenue)
		admin.POST("/venue", h.createVenue)

		admin.GET("/alerts", h.listAlerts)
		admin.POST("/alerts", h.sendAlert)

		admin.GET("/ai/summary", h.aiSummary)
		admin.POST("/ai/chat", h.aiChat)
		admin.GET("/ai/recommendations", h.aiRecommendations)
		admin.GET("/ai/actions/:id", h.aiCommandActions)
		admin.GET("/ai/forecast/:id", h.aiForecast)

		admin.POST("/media/analyze", h.analyzeMedia)
		admin.POST("/media/capture", h.captureFrame)
		admin.GET("/media/status", h.mediaStatus)
	}
}
