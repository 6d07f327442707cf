package mockapi

import "github.com/bipulsingh126/biziwit-admin/model"

// Seed helpers preload collections for tests and local development. They
// replace, not append.

func (s *Server) SeedUsers(users []model.User) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.users = users
}

func (s *Server) SeedPosts(posts []model.Post) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.posts = posts
}

func (s *Server) SeedReports(reports []model.Report) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.reports = reports
}

func (s *Server) SeedInquiries(inquiries []model.Inquiry) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.inquiries = inquiries
}

func (s *Server) SeedCategories(categories []model.Category) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.categories = categories
}
