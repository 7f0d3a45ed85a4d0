package spotify

import (
	"context"

	"tuneshell/internal/executor"
	"tuneshell/pkg/tunetypes"
)

// Factories wires this package's accessors into the executor's lazy
// construction slots. The shared client is cheap; the expensive work (the
// real-time connection) only happens when the playback factory fires.
func Factories(client *Client) executor.Factories {
	return executor.Factories{
		Playback: func() (tunetypes.PlaybackController, error) {
			return NewPlayer(context.Background(), client)
		},
		Library: func() (tunetypes.LibraryEditor, error) {
			return NewLibraryAccessor(client), nil
		},
		Query: func() (tunetypes.QueryReader, error) {
			return NewQueryAccessor(client), nil
		},
		Search: func() (tunetypes.Searcher, error) {
			return NewSearchAccessor(client), nil
		},
	}
}
