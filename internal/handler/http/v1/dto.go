package v1

import "github.com/shenikar/drishti/internal/models"

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	// Redirect заполняется, когда сессия закончилась
	Redirect string `json:"redirect,omitempty"`
}

// LoginRequest DTO для входа оператора
// @Description DTO для входа оператора
type LoginRequest struct {
	UserID   string `json:"userid" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=256"`
}

// SessionResponse DTO с данными текущей сессии (без токена)
// @Description DTO с данными текущей сессии
type SessionResponse struct {
	UserID     string      `json:"userid"`
	AccessCode int         `json:"accesscode"`
	Role       models.Role `json:"role"`
	IsAdmin    bool        `json:"isAdmin"`
}

// ReportIncidentRequest DTO формы сообщения об инциденте
// @Description DTO формы сообщения об инциденте
type ReportIncidentRequest struct {
	Zone        string   `json:"zone" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Status      string   `json:"status" validate:"required"`
	Priority    string   `json:"priority,omitempty"`
	Severity    int      `json:"severity,omitempty" validate:"omitempty,min=1,max=5"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Lng         *float64 `json:"lng" validate:"required,longitude"`
	Address     string   `json:"address,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddNoteRequest DTO для заметки к инциденту
// @Description DTO для заметки к инциденту
type AddNoteRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// AssignResponderRequest DTO для ручного назначения спасателя
// @Description DTO для ручного назначения спасателя
type AssignResponderRequest struct {
	ResponderID string `json:"responderId" validate:"required"`
	ETA         string `json:"eta,omitempty" validate:"max=64"`
}

// OccupancyRequest DTO для обновления заполненности зоны
// @Description DTO для обновления заполненности зоны
type OccupancyRequest struct {
	Occupancy *int `json:"currentOccupancy" validate:"required,min=0"`
}

// PositionRequest DTO для обновления позиции спасателя
// @Description DTO для обновления позиции спасателя
type PositionRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// SendAlertRequest DTO формы отправки оповещения
// @Description DTO формы отправки оповещения
type SendAlertRequest struct {
	AlertType       string `json:"alertType" validate:"required,max=64"`
	Target          string `json:"target" validate:"required"`
	Language        string `json:"language,omitempty" validate:"omitempty,max=16"`
	Message         string `json:"message,omitempty" validate:"max=1000"`
	Severity        string `json:"severity,omitempty" validate:"omitempty,oneof=info warning critical"`
	GenerateMessage bool   `json:"generateMessage,omitempty"`
	Context         string `json:"context,omitempty" validate:"max=2000"`
	WithAudio       bool   `json:"withAudio,omitempty"`
}

// ChatRequest DTO для запроса к AI-агенту
// @Description DTO для запроса к AI-агенту
type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=4000"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse DTO с ответом агента в markdown
// @Description DTO с ответом агента
type ChatResponse struct {
	Reply string `json:"reply"`
}

// CaptureRequest DTO для снимка кадра с камеры
// @Description DTO для снимка кадра с камеры
type CaptureRequest struct {
	Zone string `json:"zone,omitempty"`
}

// VenueRequest DTO формы настройки площадки
// @Description DTO формы настройки площадки
type VenueRequest struct {
	EventName  string  `json:"eventName" validate:"required,max=255"`
	VenueType  string  `json:"venueType" validate:"required"`
	VenueArea  float64 `json:"venueArea" validate:"gt=0"`
	EntryGates int     `json:"entryGates" validate:"min=1"`
	CrowdType  string  `json:"crowdType"`
	AutoZone   bool    `json:"autoZone"`
	ImageURL   string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ReportResponse DTO с итогом сообщения об инциденте
// @Description DTO с итогом сообщения об инциденте
type ReportResponse struct {
	Level           string               `json:"level"`
	Message         string               `json:"message"`
	DispatchMessage string               `json:"dispatchMessage,omitempty"`
	Incident        *models.Incident     `json:"incident,omitempty"`
	SagaID          string               `json:"sagaId,omitempty"`
	DispatchState   models.DispatchState `json:"dispatchState,omitempty"`
}
