package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
)

// @Summary List zones
// @Description Cached zone list with loading/refreshing/error flags.
// @Tags Zones
// @Produce json
// @Param status query string false "Status tier (normal, active, critical)"
// @Success 200 {object} syncer.State[models.Zone]
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.operationService.ListZones(c.Query("status")))
}

// @Summary Refresh zones
// @Tags Zones
// @Produce json
// @Success 200 {object} syncer.State[models.Zone]
// @Router /zones/refresh [post]
func (h *Handler) refreshZones(c *gin.Context) {
	state, _ := h.operationService.RefreshZones(c.Request.Context())
	c.JSON(http.StatusOK, state)
}

// @Summary Zone statistics
// @Tags Zones
// @Produce json
// @Success 200 {object} syncer.ZoneStats
// @Router /zones/stats [get]
func (h *Handler) zoneStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.operationService.ZoneStats())
}

// @Summary Create a zone
// @Tags Zones
// @Accept json
// @Produce json
// @Param zone body models.Zone true "Zone"
// @Success 201 {object} models.Zone
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	log := h.logger.WithField("method", "createZone")
	var input models.Zone
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	z, err := h.operationService.CreateZone(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, z)
}

// @Summary Update zone occupancy
// @Description Recomputes crowd density and derives the status tier (>=90% critical, >=70% active).
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param occupancy body OccupancyRequest true "Current occupancy"
// @Success 200 {object} models.Zone
// @Failure 400 {object} ErrorResponse "Invalid occupancy"
// @Failure 404 {object} ErrorResponse "Zone not found"
// @Router /zones/{id}/occupancy [put]
func (h *Handler) updateZoneOccupancy(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateZoneOccupancy").WithField("id", id)

	var input OccupancyRequest
	if !h.bind(c, log, &input) {
		return
	}
	z, err := h.operationService.UpdateZoneOccupancy(c.Request.Context(), id, *input.Occupancy)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, z)
}

// @Summary List responders
// @Tags Responders
// @Produce json
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Success 200 {object} syncer.State[models.Responder]
// @Router /responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	q := syncer.ResponderQuery{
		Status: models.ResponderStatus(c.Query("status")),
		Type:   models.ResponderType(c.Query("type")),
	}
	c.JSON(http.StatusOK, h.operationService.ListResponders(q))
}

// @Summary Refresh responders
// @Tags Responders
// @Produce json
// @Success 200 {object} syncer.State[models.Responder]
// @Router /responders/refresh [post]
func (h *Handler) refreshResponders(c *gin.Context) {
	state, _ := h.operationService.RefreshResponders(c.Request.Context())
	c.JSON(http.StatusOK, state)
}

// @Summary Responder statistics
// @Description Counts plus battery/signal averages and low-battery/poor-signal subsets.
// @Tags Responders
// @Produce json
// @Success 200 {object} syncer.ResponderStats
// @Router /responders/stats [get]
func (h *Handler) responderStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.operationService.ResponderStats())
}

// @Summary Create a responder
// @Tags Responders
// @Accept json
// @Produce json
// @Param responder body models.Responder true "Responder"
// @Success 201 {object} models.Responder
// @Router /responders [post]
func (h *Handler) createResponder(c *gin.Context) {
	log := h.logger.WithField("method", "createResponder")
	var input models.Responder
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	r, err := h.operationService.CreateResponder(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary Update a responder
// @Description An assigned responder must be en_route or on_scene.
// @Tags Responders
// @Accept json
// @Produce json
// @Param id path string true "Responder ID"
// @Param responder body models.Responder true "Responder"
// @Success 200 {object} models.Responder
// @Failure 400 {object} ErrorResponse "Inconsistent assignment"
// @Router /responders/{id} [put]
func (h *Handler) updateResponder(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateResponder").WithField("id", id)

	var input models.Responder
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	input.ID = id

	r, err := h.operationService.UpdateResponder(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Unassign a responder
// @Description Clears assignedIncident and eta together.
// @Tags Responders
// @Produce json
// @Param id path string true "Responder ID"
// @Success 200 {object} models.Responder
// @Router /responders/{id}/unassign [post]
func (h *Handler) unassignResponder(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "unassignResponder").WithField("id", id)

	r, err := h.operationService.UnassignResponder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Update responder position
// @Tags Responders
// @Accept json
// @Produce json
// @Param id path string true "Responder ID"
// @Param position body PositionRequest true "Position"
// @Success 200 {object} models.Responder
// @Failure 404 {object} ErrorResponse "Responder not found"
// @Router /responders/{id}/position [put]
func (h *Handler) updateResponderPosition(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateResponderPosition").WithField("id", id)

	var input PositionRequest
	if !h.bind(c, log, &input) {
		return
	}
	r, err := h.operationService.UpdateResponderPosition(c.Request.Context(), id, *input.Lat, *input.Lng)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary List emergency contacts
// @Tags Contacts
// @Produce json
// @Success 200 {array} models.EmergencyContact
// @Failure 502 {object} ErrorResponse "Backend error"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listContacts")
	contacts, err := h.operationService.ListContacts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// @Summary Create an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body models.EmergencyContact true "Contact"
// @Success 201 {object} models.EmergencyContact
// @Router /contacts [post]
func (h *Handler) createContact(c *gin.Context) {
	log := h.logger.WithField("method", "createContact")
	var input models.EmergencyContact
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	contact, err := h.operationService.CreateContact(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// @Summary Update an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body models.EmergencyContact true "Contact"
// @Success 200 {object} models.EmergencyContact
// @Router /contacts/{id} [put]
func (h *Handler) updateContact(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateContact").WithField("id", id)

	var input models.EmergencyContact
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	input.ID = id

	contact, err := h.operationService.UpdateContact(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary Set up the venue
// @Description Submit the event/venue form. Zones generated by the backend are pulled into the zone cache.
// @Tags Venue
// @Accept json
// @Produce json
// @Param venue body VenueRequest true "Venue"
// @Success 201 {object} models.Venue
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /venue [post]
func (h *Handler) createVenue(c *gin.Context) {
	var input VenueRequest
	log := h.logger.WithField("method", "createVenue")
	if !h.bind(c, log, &input) {
		return
	}

	v, err := h.operationService.CreateVenue(c.Request.Context(), DTOToVenueModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// @Summary Get the venue
// @Tags Venue
// @Produce json
// @Success 200 {object} models.Venue
// @Router /venue [get]
func (h *Handler) getVenue(c *gin.Context) {
	log := h.logger.WithField("method", "getVenue")
	v, err := h.operationService.GetVenue(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
