package timeline

import "errors"

// Sentinel errors for integration mistakes. They indicate a broken invariant
// in the caller and are always reported, never swallowed.
var (
	// ErrItemNotFound indicates a track item is not a member of the track.
	ErrItemNotFound = errors.New("track item not found")
	// ErrItemOwned indicates a track item already belongs to another track.
	ErrItemOwned = errors.New("track item already owned by a track")
	// ErrTrackNotFound indicates no track occupies the requested slot.
	ErrTrackNotFound = errors.New("track not found")
	// ErrTrackSlotOccupied indicates a track already occupies the requested slot.
	ErrTrackSlotOccupied = errors.New("track slot occupied")
	// ErrTrackIndexRange indicates a negative track index.
	ErrTrackIndexRange = errors.New("track index out of range")
	// ErrTrackAttached indicates the track is already inserted in a timeline.
	ErrTrackAttached = errors.New("track already attached to a timeline")
	// ErrContributionNotFound indicates no contribution is registered under an ID.
	ErrContributionNotFound = errors.New("contribution not found")
	// ErrDuplicateContribution indicates an ID is already registered.
	ErrDuplicateContribution = errors.New("duplicate contribution")
	// ErrUnknownContribution indicates an ID outside the known set.
	ErrUnknownContribution = errors.New("unknown contribution id")
	// ErrContributionType indicates a registered contribution has an unexpected type.
	ErrContributionType = errors.New("contribution has unexpected type")
)
