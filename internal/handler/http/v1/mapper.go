package v1

import (
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/service"
)

// DTOToReportForm преобразует DTO формы в форму саги. Автор берется из сессии.
func DTOToReportForm(dto ReportIncidentRequest, reportedBy string) dispatch.ReportForm {
	return dispatch.ReportForm{
		Zone:        dto.Zone,
		Type:        dto.Type,
		Status:      dto.Status,
		Priority:    dto.Priority,
		Severity:    dto.Severity,
		Description: dto.Description,
		Lat:         dto.Lat,
		Lng:         dto.Lng,
		Address:     dto.Address,
		ReportedBy:  reportedBy,
	}
}

// OutcomeToReportResponse преобразует итог саги в DTO для ответа
func OutcomeToReportResponse(out dispatch.Outcome) ReportResponse {
	resp := ReportResponse{
		Level:           string(out.Level),
		Message:         out.Message,
		DispatchMessage: out.DispatchMessage,
		Incident:        out.Incident,
	}
	if out.Saga != nil {
		resp.SagaID = out.Saga.ID.String()
		resp.DispatchState = out.Saga.State
	}
	return resp
}

func CredentialsToSessionResponse(creds models.Credentials) SessionResponse {
	return SessionResponse{
		UserID:     creds.UserID,
		AccessCode: creds.AccessCode,
		Role:       creds.Role(),
		IsAdmin:    creds.IsAdmin(),
	}
}

func DTOToAlertDraft(dto SendAlertRequest) service.AlertDraft {
	return service.AlertDraft{
		AlertType:       dto.AlertType,
		Target:          dto.Target,
		Language:        dto.Language,
		Message:         dto.Message,
		Severity:        models.AlertSeverity(dto.Severity),
		GenerateMessage: dto.GenerateMessage,
		Context:         dto.Context,
		WithAudio:       dto.WithAudio,
	}
}

func DTOToVenueModel(dto VenueRequest) models.Venue {
	return models.Venue{
		EventName:  dto.EventName,
		VenueType:  dto.VenueType,
		VenueArea:  dto.VenueArea,
		EntryGates: dto.EntryGates,
		CrowdType:  dto.CrowdType,
		AutoZone:   dto.AutoZone,
		ImageURL:   dto.ImageURL,
	}
}
