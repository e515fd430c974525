package models

// Venue is the event setup submitted once; the backend turns its blueprints into zones.
type Venue struct {
	EventName  string          `json:"eventName"`
	VenueType  string          `json:"venueType"`
	VenueArea  float64         `json:"venueArea"`
	EntryGates int             `json:"entryGates"`
	CrowdType  string          `json:"crowdType"`
	AutoZone   bool            `json:"autoZone"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	Zones      []ZoneBlueprint `json:"zones,omitempty"`
}

type ZoneBlueprint struct {
	ZoneID        string   `json:"zoneId"`
	Name          string   `json:"name"`
	Area          float64  `json:"area"`
	Capacity      int      `json:"capacity"`
	AssignedGates []string `json:"assignedGates,omitempty"`
	Risk          string   `json:"risk"`
}
