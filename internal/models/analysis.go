package models

// UploadTicket is the signed URL handed out for a direct-to-storage write.
type UploadTicket struct {
	URL        string `json:"url"`
	ObjectPath string `json:"objectPath"`
	DocID      string `json:"docId"`
}

// MediaAnalysis is what the vision service reports for one frame.
type MediaAnalysis struct {
	PersonCount      int       `json:"personCount"`
	FireDetected     bool      `json:"fireDetected"`
	SmokeDetected    bool      `json:"smokeDetected"`
	StampedeRisk     bool      `json:"stampedeRisk"`
	MedicalEmergency bool      `json:"medicalEmergency"`
	SuggestedAction  string    `json:"suggestedAction,omitempty"`
	Summary          string    `json:"summary,omitempty"`
	Incident         *Incident `json:"incident,omitempty"`
}

// Hazardous reports whether any detection flag is raised.
func (a MediaAnalysis) Hazardous() bool {
	return a.FireDetected || a.SmokeDetected || a.StampedeRisk || a.MedicalEmergency
}
