package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// InquiriesService manages contact/sales inquiries, including the bulk status
// endpoint and the CSV export.
type InquiriesService struct {
	client *Client
}

func (c *Client) Inquiries() *InquiriesService {
	return &InquiriesService{client: c}
}

type InquiryListQuery struct {
	Q      string
	Type   string
	Status string
	From   string // inclusive date bound, backend format
	To     string
	Page   int
	Limit  int
}

func (q InquiryListQuery) params() Params {
	return Params{
		"q":      q.Q,
		"type":   q.Type,
		"status": q.Status,
		"from":   q.From,
		"to":     q.To,
		"page":   positiveInt(q.Page),
		"limit":  positiveInt(q.Limit),
	}
}

func (is *InquiriesService) List(ctx context.Context, query InquiryListQuery) ([]model.Inquiry, error) {
	var resp model.List[model.Inquiry]
	if err := is.client.Do(ctx, Request{Path: "/api/inquiries", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Submit files an inquiry on behalf of a visitor; no authentication required.
func (is *InquiriesService) Submit(ctx context.Context, inquiry model.Inquiry) (*model.Inquiry, error) {
	var created model.Inquiry
	err := is.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/inquiries/submit", Body: inquiry}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (is *InquiriesService) Update(ctx context.Context, id string, changes map[string]any) (*model.Inquiry, error) {
	var updated model.Inquiry
	err := is.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/inquiries/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (is *InquiriesService) Delete(ctx context.Context, id string) error {
	return is.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/inquiries/" + id}, nil)
}

// BulkUpdate applies one status change to many inquiries in a single call.
func (is *InquiriesService) BulkUpdate(ctx context.Context, ids []string, status string) error {
	return is.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/inquiries/bulk",
		Body:   map[string]any{"ids": ids, "status": status},
	}, nil)
}

// ExportCSV streams the filtered inquiries as CSV. The caller owns closing
// the returned body.
func (is *InquiriesService) ExportCSV(ctx context.Context, query InquiryListQuery) (io.ReadCloser, error) {
	resp, err := is.client.DoRaw(ctx, Request{Path: "/api/inquiries/export/csv", Query: query.params()})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Metadata lists the type/status values the backend accepts as filters.
func (is *InquiriesService) Metadata(ctx context.Context) (*model.InquiryMetadata, error) {
	var meta model.InquiryMetadata
	if err := is.client.Do(ctx, Request{Path: "/api/inquiries/metadata"}, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
