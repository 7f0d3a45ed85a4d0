// Package tunetypes contains the shared types used across tuneshell packages.
// It defines the Command representation produced by the compiler pipeline, the
// Response envelope returned to callers, the DSLError contract, and the
// collaborator interfaces the core depends on but does not implement.
package tunetypes

import (
	"fmt"
	"strings"
)

// Family classifies a command as either a state-mutating action or a
// read-only query. Every Kind has a fixed Family.
type Family int

const (
	// FamilyAction marks commands that mutate remote playback or library state.
	FamilyAction Family = iota
	// FamilyQuery marks commands that only read remote state.
	FamilyQuery
)

// String returns the lowercase family name.
func (f Family) String() string {
	if f == FamilyQuery {
		return "query"
	}
	return "action"
}

// Kind identifies the concrete operation a Command performs.
type Kind int

const (
	// KindUnknown is the zero value and never appears in a valid Command.
	KindUnknown Kind = iota

	// Actions.
	KindPlay
	KindPause
	KindResume
	KindSkip
	KindSeek
	KindQueue
	KindSet // standalone state-modifier line, e.g. `volume 0.5 mode shuffle`
	KindLike
	KindUnlike
	KindFollow
	KindUnfollow
	KindSave
	KindUnsave
	KindAdd
	KindRemove
	KindCreatePlaylist
	KindDeletePlaylist

	// Queries.
	KindSearch
	KindNowPlaying
	KindGetQueue
	KindGetDevices
	KindLibrary
	KindInfo
	KindHistory
	KindRecommend
)

var kindNames = [...]string{
	KindUnknown:        "unknown",
	KindPlay:           "play",
	KindPause:          "pause",
	KindResume:         "resume",
	KindSkip:           "skip",
	KindSeek:           "seek",
	KindQueue:          "queue",
	KindSet:            "set",
	KindLike:           "like",
	KindUnlike:         "unlike",
	KindFollow:         "follow",
	KindUnfollow:       "unfollow",
	KindSave:           "save",
	KindUnsave:         "unsave",
	KindAdd:            "add",
	KindRemove:         "remove",
	KindCreatePlaylist: "create_playlist",
	KindDeletePlaylist: "delete_playlist",
	KindSearch:         "search",
	KindNowPlaying:     "now_playing",
	KindGetQueue:       "get_queue",
	KindGetDevices:     "get_devices",
	KindLibrary:        "library",
	KindInfo:           "info",
	KindHistory:        "history",
	KindRecommend:      "recommend",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && int(k) >= 0 {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Family returns the fixed family of the kind.
func (k Kind) Family() Family {
	if k >= KindSearch {
		return FamilyQuery
	}
	return FamilyAction
}

// MarshalText makes Kind render as its name in JSON responses.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Mode is a playback mode selected by the `mode` modifier.
type Mode int

const (
	// ModeNormal is plain sequential playback.
	ModeNormal Mode = iota
	// ModeShuffle enables shuffled playback.
	ModeShuffle
	// ModeRepeat repeats the current track.
	ModeRepeat
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeShuffle:
		return "shuffle"
	case ModeRepeat:
		return "repeat"
	default:
		return "normal"
	}
}

// MarshalText makes Mode render as its name in JSON responses.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode converts a mode keyword (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "shuffle":
		return ModeShuffle, nil
	case "repeat":
		return ModeRepeat, nil
	case "normal":
		return ModeNormal, nil
	default:
		return ModeNormal, fmt.Errorf("unknown mode %q", s)
	}
}

// Target references a remote entity, either canonically by URI or by free
// text that still needs resolution. The zero Target means "absent".
type Target struct {
	// URI holds the canonical colon-delimited identifier
	// (e.g. spotify:track:6rqhFgbbKwnb9MLmUQDhG6) when known.
	URI string `json:"uri,omitempty"`
	// Text holds the free-text form when the target is not yet canonical.
	Text string `json:"text,omitempty"`
}

// URITarget builds an already-canonical target.
func URITarget(uri string) Target { return Target{URI: uri} }

// TextTarget builds a free-text target requiring resolution.
func TextTarget(text string) Target { return Target{Text: text} }

// IsZero reports whether the target is absent.
func (t Target) IsZero() bool { return t.URI == "" && t.Text == "" }

// IsURI reports whether the target is already canonical.
func (t Target) IsURI() bool { return t.URI != "" }

// EntityKind returns the middle segment of a canonical URI
// ("track", "artist", "playlist", "album"), or "" for free text.
func (t Target) EntityKind() string {
	parts := strings.Split(t.URI, ":")
	if len(parts) >= 3 {
		return parts[1]
	}
	return ""
}

// BareID returns the trailing identifier segment of a canonical URI,
// or "" for free text.
func (t Target) BareID() string {
	parts := strings.Split(t.URI, ":")
	if len(parts) >= 3 {
		return parts[len(parts)-1]
	}
	return ""
}

// String renders the target for messages and logs.
func (t Target) String() string {
	if t.IsURI() {
		return t.URI
	}
	return fmt.Sprintf("%q", t.Text)
}

// StateModifiers are the playback-state modifiers legal on action commands.
// Nil fields mean the modifier was absent.
type StateModifiers struct {
	Volume *float64 // normalized to [0.0, 1.0]
	Mode   *Mode
	Device *Target
}

// Empty reports whether no state modifier was present.
func (s StateModifiers) Empty() bool {
	return s.Volume == nil && s.Mode == nil && s.Device == nil
}

// QueryModifiers are the pagination modifiers legal on query commands.
// Nil fields mean the modifier was absent.
type QueryModifiers struct {
	Limit  *int
	Offset *int
}

// Empty reports whether no query modifier was present.
func (q QueryModifiers) Empty() bool {
	return q.Limit == nil && q.Offset == nil
}

// Command is the canonical representation of one input line. It is built
// fresh per Session.Run call, flows through validate → resolve → execute,
// and is discarded after producing a Response or a DSLError.
type Command struct {
	Kind Kind

	// Primary is the main operand (track, artist, playlist, device, …).
	// Absent for operations like pause or now_playing.
	Primary Target
	// Secondary is the second operand: the destination playlist for
	// add/remove, or the playback context for `play X in Y`.
	Secondary Target

	State StateModifiers
	Query QueryModifiers

	// Operation-specific arguments.
	SkipCount      int    // signed; negative skips backwards
	SeekMS         int    // non-negative position in milliseconds
	RecommendCount int    // number of recommendations requested
	Term           string // search term
	SearchType     string // tracks | artists | albums | playlists, "" = all
	LibraryType    string // library listing filter, "" = all
	PlaylistName   string // create_playlist name
}

// Family returns the family fixed by the command's kind.
func (c *Command) Family() Family { return c.Kind.Family() }

// Response is the uniform success envelope returned for every command.
// Operation-specific fields are zero when not applicable.
type Response struct {
	Status      string   `json:"status"`
	Kind        Kind     `json:"kind"`
	Target      string   `json:"target,omitempty"`
	ResolvedURI string   `json:"resolved_uri,omitempty"`
	Context     string   `json:"context,omitempty"`
	Count       int      `json:"count,omitempty"`
	PositionMS  int      `json:"position_ms,omitempty"`
	PlaylistID  string   `json:"playlist_id,omitempty"`
	Volume      *float64 `json:"volume,omitempty"`
	Mode        *Mode    `json:"mode,omitempty"`
	Device      string   `json:"device,omitempty"`
	Term        string   `json:"term,omitempty"`
	Type        string   `json:"type,omitempty"`
	Limit       *int     `json:"limit,omitempty"`
	Offset      *int     `json:"offset,omitempty"`
	Data        any      `json:"data,omitempty"`
}

// OKResponse starts a success envelope for the given kind.
func OKResponse(kind Kind) *Response {
	return &Response{Status: "ok", Kind: kind}
}
