package domain

import "sort"

// Campaign represents a single fundraising effort.
// Amounts are stored in integer units; no currency is implied.
type Campaign struct {
	ID            uint64
	Name          string
	Description   string
	Creator       Principal
	GoalAmount    uint64
	CurrentAmount uint64
	Deadline      uint64 // unix nanoseconds
	IsActive      bool
	Contributors  map[Principal]uint64
}

// Contribution is one entry of the contributor mapping in its external,
// ordered form.
type Contribution struct {
	Principal Principal
	Amount    uint64
}

// Clone returns a deep copy of the campaign, including the contributor map.
func (c Campaign) Clone() Campaign {
	out := c
	out.Contributors = make(map[Principal]uint64, len(c.Contributors))
	for p, amount := range c.Contributors {
		out.Contributors[p] = amount
	}
	return out
}

// ContributorList returns the contributor mapping as a sequence of
// (principal, amount) pairs sorted by principal.
func (c Campaign) ContributorList() []Contribution {
	list := make([]Contribution, 0, len(c.Contributors))
	for p, amount := range c.Contributors {
		list = append(list, Contribution{Principal: p, Amount: amount})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Principal < list[j].Principal
	})
	return list
}

// Progress reports how much of the goal has been raised, in percent.
// Over-funded campaigns report more than 100. A zero goal reports 100 once
// anything has been raised and 0 otherwise.
func (c Campaign) Progress() float64 {
	if c.GoalAmount == 0 {
		if c.CurrentAmount > 0 {
			return 100
		}
		return 0
	}
	return float64(c.CurrentAmount) / float64(c.GoalAmount) * 100
}

// Remaining returns the nanoseconds left until the deadline, or 0 once it
// has passed.
func (c Campaign) Remaining(now uint64) uint64 {
	if now >= c.Deadline {
		return 0
	}
	return c.Deadline - now
}
