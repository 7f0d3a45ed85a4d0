package tunetypes

import "context"

// SearchHint tells the search collaborator what shape of entity a free-text
// lookup is expected to produce.
type SearchHint string

const (
	// HintTrack searches for tracks.
	HintTrack SearchHint = "track"
	// HintArtist searches for artists.
	HintArtist SearchHint = "artist"
	// HintPlaylist searches for playlists.
	HintPlaylist SearchHint = "playlist"
	// HintAlbum searches for albums.
	HintAlbum SearchHint = "album"
)

// SearchResult is one ranked hit returned by the search collaborator.
type SearchResult struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Searcher resolves free text into ranked canonical URIs. The returned
// order is the collaborator's own ranking and is authoritative.
type Searcher interface {
	Search(ctx context.Context, text string, hint SearchHint, limit, offset int) ([]SearchResult, error)
}

// Device is one entry in the remote device list.
type Device struct {
	Name string `json:"name"`
	ID   string `json:"device_id"`
}

// DeviceLister returns the live device list. Device names resolve against
// this list rather than the search index.
type DeviceLister interface {
	Devices(ctx context.Context) ([]Device, error)
}

// PlaybackController mutates remote playback state. Implementations hold
// the persistent real-time connection and are constructed lazily on first
// playback-affecting command.
type PlaybackController interface {
	// Play starts playback of uri; contextURI optionally names the
	// surrounding playback context (playlist, album) and may be empty.
	Play(ctx context.Context, uri, contextURI string) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	// Skip moves n tracks forward; negative n moves backwards.
	Skip(ctx context.Context, n int) error
	Seek(ctx context.Context, positionMS int) error
	Queue(ctx context.Context, uri string) error
	SetVolume(ctx context.Context, level float64) error
	SetMode(ctx context.Context, mode Mode) error
	// SetDevice transfers playback to a device. deviceID is always the bare
	// device identifier, never a ns:kind:id URI.
	SetDevice(ctx context.Context, deviceID string) error
	// Close releases the real-time connection. Idempotent.
	Close() error
}

// LibraryEditor mutates the remote library: liked tracks, followed artists,
// saved playlists, and playlist contents.
type LibraryEditor interface {
	Like(ctx context.Context, trackID string) error
	Unlike(ctx context.Context, trackID string) error
	Follow(ctx context.Context, artistID string) error
	Unfollow(ctx context.Context, artistID string) error
	Save(ctx context.Context, playlistID string) error
	Unsave(ctx context.Context, playlistID string) error
	Add(ctx context.Context, trackID, playlistID string) error
	Remove(ctx context.Context, trackID, playlistID string) error
	CreatePlaylist(ctx context.Context, name string) (string, error)
	DeletePlaylist(ctx context.Context, playlistID string) error
}

// QueryReader reads remote state. Payloads are echoed verbatim into the
// Response's Data field.
type QueryReader interface {
	NowPlaying(ctx context.Context) (any, error)
	GetQueue(ctx context.Context) (any, error)
	GetDevices(ctx context.Context) ([]Device, error)
	Library(ctx context.Context, kind string, limit, offset int) (any, error)
	Info(ctx context.Context, uri string) (any, error)
	History(ctx context.Context, limit int) (any, error)
	Recommend(ctx context.Context, n int, forURI string) (any, error)
}
