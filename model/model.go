// Package model defines the records exchanged with the admin backend. They
// are passthrough types: the backend owns their lifecycle and the client adds
// no invariants beyond render-time defaults.
package model

// StatusDraft is the display default for records the backend returns without
// an explicit status.
const StatusDraft = "draft"

// StatusOrDraft applies the render-time default for a missing status.
func StatusOrDraft(status string) string {
	if status == "" {
		return StatusDraft
	}
	return status
}

// List is the common collection envelope. Endpoints differ on which fields
// they populate; a missing items field decodes to nil and callers default it
// to empty.
type List[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total,omitempty"`
	Page  int `json:"page,omitempty"`
	Pages int `json:"pages,omitempty"`
}

type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type Post struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Content     string   `json:"content,omitempty"`
	Author      string   `json:"author,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type Report struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category,omitempty"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Price           float64  `json:"price,omitempty"`
	Pages           int      `json:"pages,omitempty"`
	Status          string   `json:"status,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
	TableOfContents []string `json:"tableOfContents,omitempty"`
	PublishedAt     string   `json:"publishedAt,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

type Category struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug,omitempty"`
	Description   string        `json:"description,omitempty"`
	Trending      bool          `json:"trending,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
}

type Subcategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Trending bool   `json:"trending,omitempty"`
}

type Megatrend struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	Status      string `json:"status,omitempty"`
	HeroImage   string `json:"heroImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// MegatrendHero is the single hero section shown on the megatrends landing
// page.
type MegatrendHero struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	CTA      string `json:"cta,omitempty"`
}

type Whitepaper struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
}

type WhitepaperRequest struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Company   string `json:"company,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type CaseStudy struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Slug      string `json:"slug,omitempty"`
	Client    string `json:"client,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Content   string `json:"content,omitempty"`
	Image     string `json:"image,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Inquiry struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message,omitempty"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type CustomReportRequest struct {
	ID           string `json:"_id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Company      string `json:"company,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	Status       string `json:"status,omitempty"`
	Response     string `json:"response,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type SeoPage struct {
	ID          string   `json:"_id"`
	Path        string   `json:"path"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	OgImage     string   `json:"ogImage,omitempty"`
	Canonical   string   `json:"canonical,omitempty"`
	AuditScore  *int     `json:"auditScore,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type Blog struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug,omitempty"`
	Content    string   `json:"content,omitempty"`
	Author     string   `json:"author,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Status     string   `json:"status,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	Views      int      `json:"views,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}

// BlogStats is the /stats/overview aggregate.
type BlogStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	Views     int `json:"views"`
}

type HomePage struct {
	Banners    []HomeBanner        `json:"banners,omitempty"`
	Megatrends []HomeMegatrendSlot `json:"megatrends,omitempty"`
	Sections   map[string]any      `json:"sections,omitempty"`
	Meta       map[string]string   `json:"meta,omitempty"`
}

type HomeBanner struct {
	Slug     string `json:"slug"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Link     string `json:"link,omitempty"`
	Order    int    `json:"order,omitempty"`
}

type HomeMegatrendSlot struct {
	Slug  string `json:"slug"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
	Order int    `json:"order,omitempty"`
}

// AnalyticsSummary is the /api/analytics dashboard payload.
type AnalyticsSummary struct {
	Visitors    int            `json:"visitors"`
	PageViews   int            `json:"pageViews"`
	Inquiries   int            `json:"inquiries"`
	Reports     int            `json:"reports"`
	TopPages    []PageMetric   `json:"topPages,omitempty"`
	ByCountry   map[string]int `json:"byCountry,omitempty"`
	PeriodStart string         `json:"periodStart,omitempty"`
	PeriodEnd   string         `json:"periodEnd,omitempty"`
}

type PageMetric struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// SeoAnalytics is the SEO pages /analytics/summary payload.
type SeoAnalytics struct {
	Pages        int     `json:"pages"`
	Audited      int     `json:"audited"`
	AverageScore float64 `json:"averageScore"`
}

// InquiryMetadata lists the filterable dimensions the backend knows about.
type InquiryMetadata struct {
	Types    []string `json:"types,omitempty"`
	Statuses []string `json:"statuses,omitempty"`
}
