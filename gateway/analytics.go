package gateway

import (
	"context"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// AnalyticsService exposes the dashboard summary.
type AnalyticsService struct {
	client *Client
}

func (c *Client) Analytics() *AnalyticsService {
	return &AnalyticsService{client: c}
}

type AnalyticsQuery struct {
	From string
	To   string
}

func (as *AnalyticsService) Summary(ctx context.Context, query AnalyticsQuery) (*model.AnalyticsSummary, error) {
	var summary model.AnalyticsSummary
	err := as.client.Do(ctx, Request{
		Path:  "/api/analytics",
		Query: Params{"from": query.From, "to": query.To},
	}, &summary)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
