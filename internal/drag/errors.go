package drag

import "errors"

var (
	// ErrSelectionMissing is returned by New when the timeline has no
	// selection controller registered.
	ErrSelectionMissing = errors.New("drag requires a registered selection controller")

	// ErrNoSession is reported by Drop when no drag is in progress.
	ErrNoSession = errors.New("no drag in progress")
)
