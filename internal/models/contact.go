package models

// EmergencyContact is static reference data for outside services.
type EmergencyContact struct {
	ID           string `json:"id"`
	Service      string `json:"service"`
	Type         string `json:"type"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Radio        string `json:"radio,omitempty"`
	Priority     int    `json:"priority"`
	ResponseTime string `json:"responseTime,omitempty"`
	Location     string `json:"location,omitempty"`
	IsActive     bool   `json:"isActive"`
}
