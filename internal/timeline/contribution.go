package timeline

import "fmt"

// ContributionID names one optional behavior. The set is closed: only the
// identifiers below may be registered.
type ContributionID string

// Known contribution identifiers.
const (
	SelectionID ContributionID = "timeline.selection"
	DragID      ContributionID = "timeline.drag"
	JournalID   ContributionID = "timeline.journal"
)

var knownContributions = map[ContributionID]bool{
	SelectionID: true,
	DragID:      true,
	JournalID:   true,
}

// Contribution is a behavior attached to a timeline and discoverable by ID.
// The timeline disposes its contributions when it is disposed.
type Contribution interface {
	ID() ContributionID
	Dispose()
}

// AddContribution registers c. Contributions that look up others at
// construction must be added after the ones they depend on.
func (tv *TimelineView) AddContribution(c Contribution) error {
	id := c.ID()
	if !knownContributions[id] {
		return fmt.Errorf("add contribution %q: %w", id, ErrUnknownContribution)
	}
	if _, exists := tv.contributions[id]; exists {
		return fmt.Errorf("add contribution %q: %w", id, ErrDuplicateContribution)
	}
	tv.contributions[id] = c
	tv.contributionOrder = append(tv.contributionOrder, id)
	return nil
}

// Contribution returns the contribution registered under id.
func (tv *TimelineView) Contribution(id ContributionID) (Contribution, error) {
	c, ok := tv.contributions[id]
	if !ok {
		return nil, fmt.Errorf("timeline contribution %q: %w", id, ErrContributionNotFound)
	}
	return c, nil
}

// Lookup returns the contribution registered under id as a T.
func Lookup[T Contribution](tv *TimelineView, id ContributionID) (T, error) {
	var zero T
	c, err := tv.Contribution(id)
	if err != nil {
		return zero, err
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("timeline contribution %q is %T: %w", id, c, ErrContributionType)
	}
	return typed, nil
}
