package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// @Summary Send an alert
// @Description Optionally AI-written text and TTS audio, then send and enqueue the webhook delivery.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body SendAlertRequest true "Alert"
// @Success 201 {object} service.AlertResult
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown target"
// @Failure 502 {object} ErrorResponse "Backend error"
// @Router /alerts [post]
func (h *Handler) sendAlert(c *gin.Context) {
	var input SendAlertRequest
	log := h.logger.WithField("method", "sendAlert")
	if !h.bind(c, log, &input) {
		return
	}

	creds, _ := credentialsFrom(c)
	res, err := h.alertService.SendAlert(c.Request.Context(), DTOToAlertDraft(input), creds.UserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	alerts, err := h.alertService.ListAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary AI situation summary
// @Description One silent retry on an empty or failed reply.
// @Tags AI
// @Produce json
// @Param zone query string false "Zone ID"
// @Success 200 {object} api.Summary
// @Failure 502 {object} ErrorResponse "Agent unavailable"
// @Router /ai/summary [get]
func (h *Handler) aiSummary(c *gin.Context) {
	log := h.logger.WithField("method", "aiSummary")
	sum, err := h.intelService.Summary(c.Request.Context(), c.Query("zone"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary Ask the AI agent
// @Tags AI
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Question"
// @Success 200 {object} ChatResponse
// @Failure 502 {object} ErrorResponse "Agent unavailable"
// @Router /ai/chat [post]
func (h *Handler) aiChat(c *gin.Context) {
	var input ChatRequest
	log := h.logger.WithField("method", "aiChat")
	if !h.bind(c, log, &input) {
		return
	}

	reply, err := h.intelService.Chat(c.Request.Context(), input.Message, input.SessionID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// @Summary Resource recommendations
// @Tags AI
// @Produce json
// @Param zone query string false "Zone ID"
// @Success 200 {array} api.ResourceRecommendation
// @Router /ai/recommendations [get]
func (h *Handler) aiRecommendations(c *gin.Context) {
	log := h.logger.WithField("method", "aiRecommendations")
	recs, err := h.intelService.Recommendations(c.Request.Context(), c.Query("zone"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// @Summary Suggested command actions for an incident
// @Tags AI
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {array} api.CommandAction
// @Router /ai/actions/{id} [get]
func (h *Handler) aiCommandActions(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "aiCommandActions").WithField("id", id)
	actions, err := h.intelService.CommandActions(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

// @Summary Crowd forecast for a zone
// @Tags AI
// @Produce json
// @Param id path string true "Zone ID"
// @Param horizon query int false "Horizon in minutes" default(30)
// @Success 200 {object} api.Forecast
// @Router /ai/forecast/{id} [get]
func (h *Handler) aiForecast(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "aiForecast").WithField("id", id)
	horizon, _ := strconv.Atoi(c.DefaultQuery("horizon", "30"))

	f, err := h.intelService.Forecast(c.Request.Context(), id, horizon)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// @Summary Analyze an uploaded image
// @Description Upload through a signed URL, then run the vision analysis.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param zone formData string true "Zone"
// @Param notes formData string false "Notes"
// @Param file formData file true "Image"
// @Success 200 {object} media.Result
// @Failure 400 {object} ErrorResponse "Missing zone or file"
// @Failure 502 {object} ErrorResponse "Upload or analysis failed"
// @Router /media/analyze [post]
func (h *Handler) analyzeMedia(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeMedia")

	fh, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing file")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	res, err := h.intelService.AnalyzeMedia(c.Request.Context(), c.PostForm("zone"), fh.Filename, contentType, data, c.PostForm("notes"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Capture and analyze a camera frame
// @Description Zone defaults to CAMERA_ZONE.
// @Tags Media
// @Accept json
// @Produce json
// @Param capture body CaptureRequest false "Zone"
// @Success 200 {object} media.Result
// @Failure 503 {object} ErrorResponse "No camera configured"
// @Router /media/capture [post]
func (h *Handler) captureFrame(c *gin.Context) {
	log := h.logger.WithField("method", "captureFrame")
	var input CaptureRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}
	zone := input.Zone
	if zone == "" {
		zone = h.cfg.CameraZone
	}

	res, err := h.intelService.CaptureFrame(c.Request.Context(), zone)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Media pipeline status
// @Tags Media
// @Produce json
// @Success 200 {object} service.MediaStatus
// @Router /media/status [get]
func (h *Handler) mediaStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.intelService.MediaStatus())
}
