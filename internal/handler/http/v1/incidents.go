package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
)

// @Summary List incidents
// @Description Cached incident list with loading/refreshing/error flags. Filters are optional.
// @Tags Incidents
// @Produce json
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Param zone query string false "Zone filter"
// @Param priority query string false "Priority filter"
// @Success 200 {object} syncer.State[models.Incident]
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	q := syncer.IncidentQuery{Zone: c.Query("zone")}
	if v := c.Query("status"); v != "" {
		q.Status = models.ParseIncidentStatus(v)
	}
	if v := c.Query("type"); v != "" {
		q.Type = models.ParseIncidentType(v)
	}
	if v := c.Query("priority"); v != "" {
		p, ok := models.ParseIncidentPriority(v)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid priority"})
			return
		}
		q.Priority = p
	}
	c.JSON(http.StatusOK, h.incidentService.ListIncidents(q))
}

// @Summary Refresh incidents
// @Description Force a refetch. On failure the previous list is returned with the error set.
// @Tags Incidents
// @Produce json
// @Success 200 {object} syncer.State[models.Incident]
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /incidents/refresh [post]
func (h *Handler) refreshIncidents(c *gin.Context) {
	state, _ := h.incidentService.RefreshIncidents(c.Request.Context())
	c.JSON(http.StatusOK, state)
}

// @Summary Incident statistics
// @Description Counts by status, type and priority with type percentages.
// @Tags Incidents
// @Produce json
// @Success 200 {object} syncer.IncidentStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /incidents/stats [get]
func (h *Handler) incidentStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.IncidentStats())
}

// @Summary Get incident by ID
// @Description Incident detail with notes.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} service.IncidentDetail
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 502 {object} ErrorResponse "Backend error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	detail, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Report an incident
// @Description Create the incident, then dispatch the nearest responder. A failed or empty dispatch is a warning, the incident stays.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param report body ReportIncidentRequest true "Report form"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Incident could not be created"
// @Router /incidents/report [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")
	if !h.bind(c, log, &input) {
		return
	}

	creds, _ := credentialsFrom(c)
	out, err := h.incidentService.ReportIncident(c.Request.Context(), DTOToReportForm(input, creds.UserID))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, OutcomeToReportResponse(out))
}

// @Summary Update incident status
// @Description Move an incident along reported -> (investigating|ongoing) -> resolved, or escalate it.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}
	inc, err := h.incidentService.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, inc)
}

// @Summary Add a note
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param note body AddNoteRequest true "Note"
// @Success 201 {object} models.IncidentNote
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /incidents/{id}/notes [post]
func (h *Handler) addIncidentNote(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addIncidentNote").WithField("id", id)

	var input AddNoteRequest
	if !h.bind(c, log, &input) {
		return
	}
	creds, _ := credentialsFrom(c)
	note, err := h.incidentService.AddNote(c.Request.Context(), id, input.Text, creds.UserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// @Summary Assign a responder
// @Description Manual assignment. Only available responders (or one already on this incident) are accepted.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param assignment body AssignResponderRequest true "Responder"
// @Success 200 {object} models.Responder
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Responder not found"
// @Failure 409 {object} ErrorResponse "Responder unavailable"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignResponder(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "assignResponder").WithField("id", id)

	var input AssignResponderRequest
	if !h.bind(c, log, &input) {
		return
	}
	r, err := h.incidentService.AssignResponder(c.Request.Context(), id, input.ResponderID, input.ETA)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Delete an incident
// @Description Admin bulk-action path.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 502 {object} ErrorResponse "Backend error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Available responders
// @Description Responders that can take a new assignment (assign dropdown).
// @Tags Incidents
// @Produce json
// @Success 200 {array} models.Responder
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /responders/available [get]
func (h *Handler) availableResponders(c *gin.Context) {
	c.JSON(http.StatusOK, h.operationService.AvailableResponders())
}

// @Summary Pending dispatches
// @Description Report sagas that ended without a responder.
// @Tags Dispatch
// @Produce json
// @Param limit query int false "Max sagas" default(50)
// @Success 200 {array} models.DispatchSaga
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /dispatch [get]
func (h *Handler) pendingDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "pendingDispatches")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	sagas, err := h.incidentService.PendingDispatches(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sagas)
}

// @Summary Get dispatch saga
// @Tags Dispatch
// @Produce json
// @Param id path string true "Saga ID"
// @Success 200 {object} models.DispatchSaga
// @Failure 400 {object} ErrorResponse "Invalid saga ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Saga not found"
// @Router /dispatch/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid saga ID"})
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	saga, err := h.incidentService.GetDispatch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, saga)
}

// @Summary Retry a dispatch
// @Description Manual retry of a saga that has no responder yet.
// @Tags Dispatch
// @Produce json
// @Param id path string true "Saga ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid saga ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Saga not found"
// @Failure 409 {object} ErrorResponse "Already dispatched"
// @Router /dispatch/{id}/retry [post]
func (h *Handler) retryDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid saga ID"})
		return
	}
	log := h.logger.WithField("method", "retryDispatch").WithField("id", id)

	out, err := h.incidentService.RetryDispatch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, OutcomeToReportResponse(out))
}
