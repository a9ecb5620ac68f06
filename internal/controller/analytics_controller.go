package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
)

const upcomingMeetingsLimit = 5

type AnalyticsController struct {
	store *storage.Store
}

func NewAnalyticsController(store *storage.Store) *AnalyticsController {
	return &AnalyticsController{store: store}
}

// Summary recomputes the dashboard aggregate from a full scan of the
// current store contents. The dataset is small and volatile, so there is
// no cache to invalidate.
func (ctl *AnalyticsController) Summary(c *fiber.Ctx) error {
	clients := ctl.store.Clients()
	properties := ctl.store.Properties()
	meetings := ctl.store.Meetings()

	summary := model.AnalyticsSummary{
		TotalClients:     len(clients),
		TotalProperties:  len(properties),
		UpcomingMeetings: []model.Meeting{},
	}

	for _, client := range clients {
		switch client.Status {
		case model.ClientStatusActive:
			summary.ClientStatusDistribution.Active++
		case model.ClientStatusProspect:
			summary.ClientStatusDistribution.Prospect++
		case model.ClientStatusInactive:
			summary.ClientStatusDistribution.Inactive++
		}
	}

	for _, property := range properties {
		if property.Status == model.PropertyStatusListed {
			summary.ActiveListings++
		}
		// price format is checked at the schema boundary
		if value, err := strconv.ParseFloat(property.Price, 64); err == nil {
			summary.PortfolioValue += value
		}
		switch property.PropertyType {
		case model.PropertyTypeResidential:
			summary.PropertyTypeDistribution.Residential++
		case model.PropertyTypeCommercial:
			summary.PropertyTypeDistribution.Commercial++
		case model.PropertyTypeIndustrial:
			summary.PropertyTypeDistribution.Industrial++
		}
	}

	now := time.Now()
	for _, meeting := range meetings {
		if len(summary.UpcomingMeetings) == upcomingMeetingsLimit {
			break
		}
		if meeting.Status == model.MeetingStatusScheduled && meeting.ScheduledAt.After(now) {
			summary.UpcomingMeetings = append(summary.UpcomingMeetings, meeting)
		}
	}

	return c.JSON(summary)
}
