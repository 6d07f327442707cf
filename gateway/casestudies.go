package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// CaseStudiesService manages client case studies.
type CaseStudiesService struct {
	client *Client
}

func (c *Client) CaseStudies() *CaseStudiesService {
	return &CaseStudiesService{client: c}
}

type CaseStudyListQuery struct {
	Q        string
	Industry string
	Status   string
	Page     int
	Limit    int
}

func (q CaseStudyListQuery) params() Params {
	return Params{
		"q":        q.Q,
		"industry": q.Industry,
		"status":   q.Status,
		"page":     positiveInt(q.Page),
		"limit":    positiveInt(q.Limit),
	}
}

func (cs *CaseStudiesService) List(ctx context.Context, query CaseStudyListQuery) ([]model.CaseStudy, error) {
	var resp model.List[model.CaseStudy]
	if err := cs.client.Do(ctx, Request{Path: "/api/case-studies", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (cs *CaseStudiesService) Create(ctx context.Context, study model.CaseStudy) (*model.CaseStudy, error) {
	var created model.CaseStudy
	err := cs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/case-studies", Body: study}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (cs *CaseStudiesService) Update(ctx context.Context, id string, changes map[string]any) (*model.CaseStudy, error) {
	var updated model.CaseStudy
	err := cs.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/case-studies/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (cs *CaseStudiesService) Delete(ctx context.Context, id string) error {
	return cs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/case-studies/" + id}, nil)
}

func (cs *CaseStudiesService) UploadImage(ctx context.Context, id, fileName string, file io.Reader) (*model.CaseStudy, error) {
	form, err := NewFormPayload(nil, "image", fileName, file)
	if err != nil {
		return nil, err
	}
	var updated model.CaseStudy
	err = cs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/case-studies/" + id + "/image", Form: form}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
