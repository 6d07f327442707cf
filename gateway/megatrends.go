package gateway

import (
	"context"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// MegatrendsService manages megatrend articles plus the landing page hero and
// whitepaper sub-resources.
type MegatrendsService struct {
	client *Client
}

func (c *Client) Megatrends() *MegatrendsService {
	return &MegatrendsService{client: c}
}

type MegatrendListQuery struct {
	Q      string
	Status string
	Page   int
	Limit  int
}

func (q MegatrendListQuery) params() Params {
	return Params{
		"q":      q.Q,
		"status": q.Status,
		"page":   positiveInt(q.Page),
		"limit":  positiveInt(q.Limit),
	}
}

func (ms *MegatrendsService) List(ctx context.Context, query MegatrendListQuery) ([]model.Megatrend, error) {
	var resp model.List[model.Megatrend]
	if err := ms.client.Do(ctx, Request{Path: "/api/megatrends", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (ms *MegatrendsService) Create(ctx context.Context, trend model.Megatrend) (*model.Megatrend, error) {
	var created model.Megatrend
	err := ms.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/megatrends", Body: trend}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (ms *MegatrendsService) Update(ctx context.Context, id string, changes map[string]any) (*model.Megatrend, error) {
	var updated model.Megatrend
	err := ms.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/megatrends/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (ms *MegatrendsService) Delete(ctx context.Context, id string) error {
	return ms.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/megatrends/" + id}, nil)
}

func (ms *MegatrendsService) Hero(ctx context.Context) (*model.MegatrendHero, error) {
	var hero model.MegatrendHero
	if err := ms.client.Do(ctx, Request{Path: "/api/megatrends/hero"}, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

func (ms *MegatrendsService) UpdateHero(ctx context.Context, hero model.MegatrendHero) error {
	return ms.client.Do(ctx, Request{Method: http.MethodPut, Path: "/api/megatrends/hero", Body: hero}, nil)
}

func (ms *MegatrendsService) Whitepaper(ctx context.Context) (*model.Whitepaper, error) {
	var wp model.Whitepaper
	if err := ms.client.Do(ctx, Request{Path: "/api/megatrends/whitepaper"}, &wp); err != nil {
		return nil, err
	}
	return &wp, nil
}

func (ms *MegatrendsService) UpdateWhitepaper(ctx context.Context, wp model.Whitepaper) error {
	return ms.client.Do(ctx, Request{Method: http.MethodPut, Path: "/api/megatrends/whitepaper", Body: wp}, nil)
}

func (ms *MegatrendsService) WhitepaperRequests(ctx context.Context) ([]model.WhitepaperRequest, error) {
	var resp model.List[model.WhitepaperRequest]
	if err := ms.client.Do(ctx, Request{Path: "/api/megatrends/whitepaper-request"}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
