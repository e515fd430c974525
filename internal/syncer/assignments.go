package syncer

import "github.com/shenikar/drishti/internal/models"

// ProjectAssignments rebuilds every incident's assignedResponder from the
// responder list. Whatever snapshot the backend sent is replaced, so an
// incident never points at a responder that has moved on or does not exist.
// When several responders point at one incident the first in list order wins.
func ProjectAssignments(incidents []models.Incident, responders []models.Responder) []models.Incident {
	byIncident := make(map[string]models.Responder, len(responders))
	for _, r := range responders {
		if !r.Assigned() {
			continue
		}
		if _, taken := byIncident[*r.AssignedIncident]; !taken {
			byIncident[*r.AssignedIncident] = r
		}
	}

	out := make([]models.Incident, len(incidents))
	for i, inc := range incidents {
		inc.AssignedResponder = nil
		if r, ok := byIncident[inc.ID]; ok {
			inc.AssignedResponder = r.Snapshot()
		}
		out[i] = inc
	}
	return out
}
