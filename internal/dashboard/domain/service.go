package domain

import (
	"context"

	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
)

// RecentActivityLimit caps the dashboard activity feed.
const RecentActivityLimit = 10

// Summary aggregates the dashboard figures. Empty data sets produce
// zeroes, never errors.
type Summary struct {
	ContactCount     int64
	OpportunityCount int64
	// PipelineValueCents sums opportunity values excluding lost ones.
	PipelineValueCents int64
	CountsByState      map[string]int64
	RecentActivities   []activitydomain.Activity
}

type Service interface {
	Summary(context.Context) (Summary, error)
}
