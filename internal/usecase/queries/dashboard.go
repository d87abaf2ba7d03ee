package queries

import "context"

// DashboardMetric mirrors the admin dashboard tiles. The studio has no
// analytics backend; every series starts zeroed.
type DashboardMetric struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

type WeeklyStat struct {
	Name   string `json:"name"`
	Active int    `json:"active"`
	Churn  int    `json:"churn"`
}

type DashboardView struct {
	Metrics []DashboardMetric `json:"metrics"`
	Weekly  []WeeklyStat      `json:"weekly"`
}

type DashboardQueries interface {
	Dashboard(ctx context.Context) *DashboardView
}

type dashboardQueriesImpl struct{}

func NewDashboardQueries() DashboardQueries {
	return &dashboardQueriesImpl{}
}

func (q *dashboardQueriesImpl) Dashboard(_ context.Context) *DashboardView {
	return &DashboardView{
		Metrics: []DashboardMetric{
			{Label: "Active Members", Value: "0", Change: 0, Trend: "up"},
			{Label: "Monthly Revenue", Value: "$0", Change: 0, Trend: "up"},
			{Label: "Classes Booked", Value: "0", Change: 0, Trend: "up"},
			{Label: "Boutique Orders", Value: "0", Change: 0, Trend: "up"},
		},
		Weekly: []WeeklyStat{
			{Name: "Week 1"},
			{Name: "Week 2"},
			{Name: "Week 3"},
			{Name: "Week 4"},
		},
	}
}
