package tui

import "github.com/papapumpkin/chronon/internal/scene"

// MsgSceneChanged is sent when the scene watcher reports a change on disk.
type MsgSceneChanged struct {
	Change scene.Change
}

// MsgReload asks the model to reload the scene from disk.
type MsgReload struct{}

// MsgStatus is a one-line message for the message row.
type MsgStatus struct {
	Text string
	Err  bool
}
