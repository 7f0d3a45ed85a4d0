// Package resolve replaces free-text targets with canonical identifiers.
// Track, artist, album and playlist text goes through the search
// collaborator with a type hint derived from the command; device names
// resolve against the live device list instead, because devices are not
// search-indexed entities. Canonical targets pass through untouched, so
// resolution is idempotent on already-resolved commands.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"tuneshell/internal/logger"
	"tuneshell/pkg/tunetypes"
)

// Error reports free text that could not be mapped to a canonical
// identifier, together with the type hint the lookup used.
type Error struct {
	Text string
	Hint tunetypes.SearchHint
}

func (e *Error) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Hint, e.Text)
}

// Resolver owns the two resolution paths. It holds interfaces rather than
// concrete collaborators so the executor can hand it lazily-built handles.
type Resolver struct {
	searcher tunetypes.Searcher
	devices  tunetypes.DeviceLister
}

// New creates a Resolver over the given collaborators.
func New(searcher tunetypes.Searcher, devices tunetypes.DeviceLister) *Resolver {
	return &Resolver{searcher: searcher, devices: devices}
}

// Resolve rewrites every free-text target in cmd to its canonical form and
// returns the command. A command with only canonical targets is returned
// unchanged without touching any collaborator.
func (r *Resolver) Resolve(ctx context.Context, cmd *tunetypes.Command) (*tunetypes.Command, error) {
	if cmd.Primary.Text != "" && resolvable(cmd.Kind) {
		uri, err := r.lookup(ctx, cmd.Primary.Text, primaryHint(cmd.Kind))
		if err != nil {
			return nil, err
		}
		cmd.Primary = tunetypes.URITarget(uri)
	}
	if cmd.Secondary.Text != "" {
		uri, err := r.lookup(ctx, cmd.Secondary.Text, tunetypes.HintPlaylist)
		if err != nil {
			return nil, err
		}
		cmd.Secondary = tunetypes.URITarget(uri)
	}
	if cmd.State.Device != nil {
		switch {
		case cmd.State.Device.Text != "":
			id, err := r.lookupDevice(ctx, cmd.State.Device.Text)
			if err != nil {
				return nil, err
			}
			resolved := tunetypes.URITarget(id)
			cmd.State.Device = &resolved
		case cmd.State.Device.BareID() != "":
			// URI-form device: strip to the bare ID so SetDevice always
			// receives the same shape as a name-resolved device.
			resolved := tunetypes.URITarget(cmd.State.Device.BareID())
			cmd.State.Device = &resolved
		}
	}
	return cmd, nil
}

// lookup resolves text through the search collaborator, taking the
// top-ranked result as returned. The collaborator's own ordering is
// authoritative; no re-ranking happens here.
func (r *Resolver) lookup(ctx context.Context, text string, hint tunetypes.SearchHint) (string, error) {
	logger.Debug("Resolving free text", "text", text, "hint", string(hint))
	results, err := r.searcher.Search(ctx, text, hint, 1, 0)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", &Error{Text: text, Hint: hint}
	}
	logger.Debug("Resolved free text", "text", text, "uri", results[0].URI)
	return results[0].URI, nil
}

// lookupDevice resolves a device name against the live device list,
// matching names case-insensitively.
func (r *Resolver) lookupDevice(ctx context.Context, name string) (string, error) {
	devices, err := r.devices.Devices(ctx)
	if err != nil {
		return "", err
	}
	for _, d := range devices {
		if strings.EqualFold(d.Name, name) {
			return d.ID, nil
		}
	}
	return "", &Error{Text: name, Hint: "device"}
}

// resolvable reports whether the command's primary target goes through the
// search path. Search terms and playlist names are plain strings, never
// targets, so only these kinds carry resolvable primaries.
func resolvable(kind tunetypes.Kind) bool {
	switch kind {
	case tunetypes.KindPlay, tunetypes.KindQueue, tunetypes.KindLike, tunetypes.KindUnlike,
		tunetypes.KindFollow, tunetypes.KindUnfollow, tunetypes.KindSave, tunetypes.KindUnsave,
		tunetypes.KindAdd, tunetypes.KindRemove, tunetypes.KindDeletePlaylist,
		tunetypes.KindInfo, tunetypes.KindRecommend:
		return true
	default:
		return false
	}
}

// primaryHint derives the search shape from the command: play-like commands
// want tracks, follow wants artists, playlist mutations want playlists.
func primaryHint(kind tunetypes.Kind) tunetypes.SearchHint {
	switch kind {
	case tunetypes.KindFollow, tunetypes.KindUnfollow:
		return tunetypes.HintArtist
	case tunetypes.KindSave, tunetypes.KindUnsave, tunetypes.KindDeletePlaylist, tunetypes.KindRecommend:
		return tunetypes.HintPlaylist
	default:
		return tunetypes.HintTrack
	}
}
