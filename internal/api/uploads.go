package api

import (
	"context"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type UploadRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
	Zone     string `json:"zone"`
	Notes    string `json:"notes,omitempty"`
	Type     string `json:"type"`
	Bucket   string `json:"bucket,omitempty"`
}

type AnalyzeRequest struct {
	FileURL      string `json:"fileUrl"`
	Zone         string `json:"zone"`
	DocID        string `json:"docId"`
	AutoIncident bool   `json:"autoIncident"`
}

type Uploads struct {
	c *client.Client
}

func NewUploads(c *client.Client) *Uploads {
	return &Uploads{c: c}
}

// PresignedURL asks for a signed URL scoped to a zone.
func (a *Uploads) PresignedURL(ctx context.Context, req UploadRequest) (models.UploadTicket, error) {
	var out models.UploadTicket
	if err := a.c.Post(ctx, "/upload/presigned-url", req, &out); err != nil {
		return models.UploadTicket{}, err
	}
	return out, nil
}

// Put writes the bytes straight to storage through the signed URL.
func (a *Uploads) Put(ctx context.Context, ticket models.UploadTicket, contentType string, data []byte) error {
	return a.c.PutObject(ctx, ticket.URL, contentType, data)
}

func (a *Uploads) AnalyzeMedia(ctx context.Context, req AnalyzeRequest) (models.MediaAnalysis, error) {
	var out models.MediaAnalysis
	if err := a.c.Post(ctx, "/analyze-media", req, &out); err != nil {
		return models.MediaAnalysis{}, err
	}
	return out, nil
}
