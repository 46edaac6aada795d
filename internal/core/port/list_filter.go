package port

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"icp-crowdfunding/internal/core/domain"
)

// ErrInvalidFilter is returned when a list status or sort is not recognised.
var ErrInvalidFilter = errors.New("invalid list filter")

// CampaignStatus selects campaigns by lifecycle state when listing.
type CampaignStatus string

const (
	StatusAll    CampaignStatus = "all"
	StatusActive CampaignStatus = "active" // accepting contributions and before the deadline
	StatusFunded CampaignStatus = "funded" // raised at least the goal
	StatusEnded  CampaignStatus = "ended"  // closed or past the deadline
)

// CampaignSort orders a campaign listing. The zero value keeps ascending id
// order.
type CampaignSort string

const (
	SortByID       CampaignSort = ""
	SortNewest     CampaignSort = "newest"
	SortEndingSoon CampaignSort = "endingSoon"
	SortMostFunded CampaignSort = "mostFunded"
	SortGoalAmount CampaignSort = "goalAmount"
)

// ListFilter narrows and orders a campaign listing. The zero value lists
// every campaign by ascending id.
type ListFilter struct {
	// Query matches name or description, case-insensitively.
	Query  string
	Status CampaignStatus
	Sort   CampaignSort
}

// ParseListFilter validates raw query values. Empty status means all.
func ParseListFilter(query, status, sortBy string) (ListFilter, error) {
	f := ListFilter{Query: strings.TrimSpace(query), Status: CampaignStatus(status), Sort: CampaignSort(sortBy)}
	switch f.Status {
	case "":
		f.Status = StatusAll
	case StatusAll, StatusActive, StatusFunded, StatusEnded:
	default:
		return ListFilter{}, fmt.Errorf("status %q: %w", status, ErrInvalidFilter)
	}
	switch f.Sort {
	case SortByID, SortNewest, SortEndingSoon, SortMostFunded, SortGoalAmount:
	default:
		return ListFilter{}, fmt.Errorf("sort %q: %w", sortBy, ErrInvalidFilter)
	}
	return f, nil
}

// Match reports whether c passes the query and status filters at now.
func (f ListFilter) Match(c domain.Campaign, now uint64) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	switch f.Status {
	case StatusActive:
		return c.IsActive && now < c.Deadline
	case StatusFunded:
		return c.CurrentAmount >= c.GoalAmount
	case StatusEnded:
		return !c.IsActive || now >= c.Deadline
	default:
		return true
	}
}

// Order sorts views in place. Views must arrive in ascending id order;
// ties keep that order.
func (f ListFilter) Order(views []CampaignView) {
	var less func(a, b domain.Campaign) bool
	switch f.Sort {
	case SortNewest:
		less = func(a, b domain.Campaign) bool { return a.ID > b.ID }
	case SortEndingSoon:
		less = func(a, b domain.Campaign) bool { return a.Deadline < b.Deadline }
	case SortMostFunded:
		less = func(a, b domain.Campaign) bool { return a.CurrentAmount > b.CurrentAmount }
	case SortGoalAmount:
		less = func(a, b domain.Campaign) bool { return a.GoalAmount > b.GoalAmount }
	default:
		return
	}
	sort.SliceStable(views, func(i, j int) bool {
		return less(views[i].Campaign, views[j].Campaign)
	})
}
