package ledger

import (
	"fmt"
	"sort"
	"sync"

	"icp-crowdfunding/internal/core/domain"
)

// CampaignLedger owns every campaign and the id allocator. All methods are
// safe for concurrent use: reads share a lock, Create and Contribute hold it
// exclusively so no caller ever observes a partially updated campaign.
type CampaignLedger struct {
	mu        sync.RWMutex
	campaigns map[uint64]*domain.Campaign
	nextID    uint64
}

// New returns an empty ledger whose first campaign id is 1.
func New() *CampaignLedger {
	return &CampaignLedger{
		campaigns: make(map[uint64]*domain.Campaign),
		nextID:    1,
	}
}

// Create stores a new active campaign with no contributions and returns its
// id. It never fails: a zero goal or a deadline in the past are accepted.
func (l *CampaignLedger) Create(name, description string, goal, deadline uint64, creator domain.Principal) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++

	l.campaigns[id] = &domain.Campaign{
		ID:           id,
		Name:         name,
		Description:  description,
		Creator:      creator,
		GoalAmount:   goal,
		Deadline:     deadline,
		IsActive:     true,
		Contributors: make(map[domain.Principal]uint64),
	}
	return id
}

// Contribute records amount from caller against the campaign. The checks run
// in order: the campaign must exist, be active, and now must not exceed its
// deadline. A contribution observed after the deadline deactivates the
// campaign as a side effect and returns domain.ErrExpired; later attempts
// get domain.ErrInactive.
func (l *CampaignLedger) Contribute(id, amount uint64, caller domain.Principal, now uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	if !c.IsActive {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrInactive)
	}
	if now > c.Deadline {
		c.IsActive = false
		return fmt.Errorf("campaign %d: %w", id, domain.ErrExpired)
	}
	// Both totals are checked before either is touched. The per-caller entry
	// can never exceed CurrentAmount, so checking the total is enough.
	if c.CurrentAmount+amount < c.CurrentAmount {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrAmountOverflow)
	}

	c.CurrentAmount += amount
	c.Contributors[caller] += amount
	return nil
}

// Get returns a copy of the campaign.
func (l *CampaignLedger) Get(id uint64) (domain.Campaign, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.campaigns[id]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

// List returns copies of every campaign in ascending id order.
func (l *CampaignLedger) List() []domain.Campaign {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]uint64, 0, len(l.campaigns))
	for id := range l.campaigns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Campaign, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.campaigns[id].Clone())
	}
	return out
}

// IsSuccessful reports whether the campaign reached its goal. It returns
// domain.ErrStillActive while now is before the deadline, whatever the
// IsActive flag says. It never changes the campaign.
func (l *CampaignLedger) IsSuccessful(id, now uint64) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.campaigns[id]
	if !ok {
		return false, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	if now < c.Deadline {
		return false, fmt.Errorf("campaign %d: %w", id, domain.ErrStillActive)
	}
	return c.CurrentAmount >= c.GoalAmount, nil
}

// Contribution returns the total recorded for caller, or 0 if caller never
// contributed.
func (l *CampaignLedger) Contribution(id uint64, caller domain.Principal) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.campaigns[id]
	if !ok {
		return 0, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c.Contributors[caller], nil
}
