package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// HomepageService manages the homepage document and its banner/megatrend
// sub-resources, which are addressed by slug.
type HomepageService struct {
	client *Client
}

func (c *Client) Homepage() *HomepageService {
	return &HomepageService{client: c}
}

func (hs *HomepageService) Get(ctx context.Context) (*model.HomePage, error) {
	var page model.HomePage
	if err := hs.client.Do(ctx, Request{Path: "/api/homepage"}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (hs *HomepageService) Update(ctx context.Context, page model.HomePage) (*model.HomePage, error) {
	var updated model.HomePage
	err := hs.client.Do(ctx, Request{Method: http.MethodPut, Path: "/api/homepage", Body: page}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (hs *HomepageService) UpdateBanner(ctx context.Context, banner model.HomeBanner) error {
	return hs.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/api/homepage/banners/" + banner.Slug,
		Body:   banner,
	}, nil)
}

func (hs *HomepageService) UploadBannerImage(ctx context.Context, slug, fileName string, file io.Reader) error {
	form, err := NewFormPayload(nil, "image", fileName, file)
	if err != nil {
		return err
	}
	return hs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/homepage/banners/" + slug + "/image",
		Form:   form,
	}, nil)
}

func (hs *HomepageService) DeleteBannerImage(ctx context.Context, slug string) error {
	return hs.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/api/homepage/banners/" + slug + "/image",
	}, nil)
}

func (hs *HomepageService) UpdateMegatrendSlot(ctx context.Context, slot model.HomeMegatrendSlot) error {
	return hs.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/api/homepage/megatrends/" + slot.Slug,
		Body:   slot,
	}, nil)
}

func (hs *HomepageService) UploadMegatrendImage(ctx context.Context, slug, fileName string, file io.Reader) error {
	form, err := NewFormPayload(nil, "image", fileName, file)
	if err != nil {
		return err
	}
	return hs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/homepage/megatrends/" + slug + "/image",
		Form:   form,
	}, nil)
}

func (hs *HomepageService) DeleteMegatrendImage(ctx context.Context, slug string) error {
	return hs.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/api/homepage/megatrends/" + slug + "/image",
	}, nil)
}
