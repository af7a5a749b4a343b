package v1

import (
	"context"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
)

// MetricPoint is one month of a dashboard chart series.
type MetricPoint struct {
	Label string
	Value int
}

// DashboardStats are the headline numbers and chart series of the admin
// dashboard. Page views and their trend are static fixture content supplied
// in place of a real analytics pipeline.
type DashboardStats struct {
	PageViews      int
	PageViewsTrend string
	Messages       int
	MessagesTrend  string
	Projects       int
	Stars          int

	PageViewsSeries []MetricPoint
	MessagesSeries  []MetricPoint
}

// DashboardService assembles the admin dashboard numbers from the project
// showcase, the message store, and the mock analytics fixtures.
type DashboardService struct {
	projects *ProjectService
	contact  *ContactService
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(projects *ProjectService, contact *ContactService) *DashboardService {
	return &DashboardService{projects: projects, contact: contact}
}

// Stats returns the dashboard numbers. Repository-derived values come
// through the cached project service; everything else is fixture data.
func (s *DashboardService) Stats(ctx context.Context) DashboardStats {
	owned := s.projects.Owned(ctx)
	starred := s.projects.Starred(ctx)

	return DashboardStats{
		PageViews:      3271,
		PageViewsTrend: "+20.1% from last month",
		Messages:       s.contact.Count(ctx),
		MessagesTrend:  "+6 new since last week",
		Projects:       len(owned),
		Stars:          totalStars(starred),

		PageViewsSeries: []MetricPoint{
			{Label: "Jan", Value: 40},
			{Label: "Feb", Value: 30},
			{Label: "Mar", Value: 45},
			{Label: "Apr", Value: 47},
			{Label: "May", Value: 60},
			{Label: "Jun", Value: 85},
			{Label: "Jul", Value: 70},
		},
		MessagesSeries: []MetricPoint{
			{Label: "Jan", Value: 3},
			{Label: "Feb", Value: 5},
			{Label: "Mar", Value: 2},
			{Label: "Apr", Value: 7},
			{Label: "May", Value: 4},
			{Label: "Jun", Value: 9},
			{Label: "Jul", Value: 6},
		},
	}
}

func totalStars(repos []domain.Repository) int {
	total := 0
	for _, repo := range repos {
		total += repo.Stars
	}
	return total
}
