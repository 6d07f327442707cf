package gateway

import (
	"context"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// CustomReportsService manages bespoke report requests submitted by site
// visitors.
type CustomReportsService struct {
	client *Client
}

func (c *Client) CustomReports() *CustomReportsService {
	return &CustomReportsService{client: c}
}

type CustomReportListQuery struct {
	Q      string
	Status string
	Page   int
	Limit  int
}

func (q CustomReportListQuery) params() Params {
	return Params{
		"q":      q.Q,
		"status": q.Status,
		"page":   positiveInt(q.Page),
		"limit":  positiveInt(q.Limit),
	}
}

func (cs *CustomReportsService) List(ctx context.Context, query CustomReportListQuery) ([]model.CustomReportRequest, error) {
	var resp model.List[model.CustomReportRequest]
	if err := cs.client.Do(ctx, Request{Path: "/api/custom-report-requests", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Submit files a new request. Used by the public site as well, so it does not
// require authentication.
func (cs *CustomReportsService) Submit(ctx context.Context, req model.CustomReportRequest) (*model.CustomReportRequest, error) {
	var created model.CustomReportRequest
	err := cs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/custom-report-requests/submit", Body: req}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (cs *CustomReportsService) Update(ctx context.Context, id string, changes map[string]any) (*model.CustomReportRequest, error) {
	var updated model.CustomReportRequest
	err := cs.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/custom-report-requests/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (cs *CustomReportsService) Delete(ctx context.Context, id string) error {
	return cs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/custom-report-requests/" + id}, nil)
}

// Respond records the analyst's reply and emails it to the requester.
func (cs *CustomReportsService) Respond(ctx context.Context, id, response string) error {
	return cs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/custom-report-requests/" + id + "/respond",
		Body:   map[string]any{"response": response},
	}, nil)
}
