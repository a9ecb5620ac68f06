package model

// AnalyticsSummary is recomputed from the live store on every request.
type AnalyticsSummary struct {
	TotalClients             int                      `json:"totalClients"`
	TotalProperties          int                      `json:"totalProperties"`
	PortfolioValue           float64                  `json:"portfolioValue"`
	ActiveListings           int                      `json:"activeListings"`
	ClientStatusDistribution ClientStatusDistribution `json:"clientStatusDistribution"`
	PropertyTypeDistribution PropertyTypeDistribution `json:"propertyTypeDistribution"`
	UpcomingMeetings         []Meeting                `json:"upcomingMeetings"`
}

type ClientStatusDistribution struct {
	Active   int `json:"active"`
	Prospect int `json:"prospect"`
	Inactive int `json:"inactive"`
}

type PropertyTypeDistribution struct {
	Residential int `json:"residential"`
	Commercial  int `json:"commercial"`
	Industrial  int `json:"industrial"`
}
