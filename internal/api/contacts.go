package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type Contacts struct {
	c *client.Client
}

func NewContacts(c *client.Client) *Contacts {
	return &Contacts{c: c}
}

func (a *Contacts) List(ctx context.Context) ([]models.EmergencyContact, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/emergency_contacts", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.EmergencyContact](raw, "emergency_contacts")
}

func (a *Contacts) Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/emergency_contacts", contact, &raw); err != nil {
		return models.EmergencyContact{}, err
	}
	return decodeItem[models.EmergencyContact](raw, "contact")
}

func (a *Contacts) Update(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	var raw json.RawMessage
	if err := a.c.Put(ctx, "/emergency_contacts/"+url.PathEscape(contact.ID), contact, &raw); err != nil {
		return models.EmergencyContact{}, err
	}
	if len(raw) == 0 {
		return contact, nil
	}
	return decodeItem[models.EmergencyContact](raw, "contact")
}
