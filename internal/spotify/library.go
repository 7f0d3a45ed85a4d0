package spotify

import (
	"context"

	"github.com/google/uuid"
)

// LibraryAccessor implements tunetypes.LibraryEditor over the shared client.
type LibraryAccessor struct {
	client *Client
}

// NewLibraryAccessor creates the library accessor.
func NewLibraryAccessor(client *Client) *LibraryAccessor {
	return &LibraryAccessor{client: client}
}

type libraryMutation struct {
	Operation string `json:"operation"`
	TargetID  string `json:"target_id"`
	ContextID string `json:"context_id,omitempty"`
}

func (l *LibraryAccessor) mutate(ctx context.Context, operation, targetID, contextID string) error {
	return l.client.post(ctx, "/v1/library", libraryMutation{
		Operation: operation,
		TargetID:  targetID,
		ContextID: contextID,
	}, nil)
}

// Like marks a track as liked.
func (l *LibraryAccessor) Like(ctx context.Context, trackID string) error {
	return l.mutate(ctx, "like", trackID, "")
}

// Unlike removes a track from liked tracks.
func (l *LibraryAccessor) Unlike(ctx context.Context, trackID string) error {
	return l.mutate(ctx, "unlike", trackID, "")
}

// Follow follows an artist.
func (l *LibraryAccessor) Follow(ctx context.Context, artistID string) error {
	return l.mutate(ctx, "follow", artistID, "")
}

// Unfollow unfollows an artist.
func (l *LibraryAccessor) Unfollow(ctx context.Context, artistID string) error {
	return l.mutate(ctx, "unfollow", artistID, "")
}

// Save adds a playlist to the library.
func (l *LibraryAccessor) Save(ctx context.Context, playlistID string) error {
	return l.mutate(ctx, "save", playlistID, "")
}

// Unsave removes a playlist from the library.
func (l *LibraryAccessor) Unsave(ctx context.Context, playlistID string) error {
	return l.mutate(ctx, "unsave", playlistID, "")
}

// Add puts a track into a playlist.
func (l *LibraryAccessor) Add(ctx context.Context, trackID, playlistID string) error {
	return l.mutate(ctx, "add", trackID, playlistID)
}

// Remove takes a track out of a playlist.
func (l *LibraryAccessor) Remove(ctx context.Context, trackID, playlistID string) error {
	return l.mutate(ctx, "remove", trackID, playlistID)
}

type createPlaylistRequest struct {
	Name      string `json:"name"`
	RequestID string `json:"request_id"`
}

type createPlaylistResponse struct {
	PlaylistID string `json:"playlist_id"`
}

// CreatePlaylist creates a playlist and returns its identifier. The request
// id makes a replayed create idempotent on the remote side.
func (l *LibraryAccessor) CreatePlaylist(ctx context.Context, name string) (string, error) {
	var resp createPlaylistResponse
	err := l.client.post(ctx, "/v1/playlists", createPlaylistRequest{
		Name:      name,
		RequestID: uuid.NewString(),
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.PlaylistID, nil
}

// DeletePlaylist deletes a playlist by identifier.
func (l *LibraryAccessor) DeletePlaylist(ctx context.Context, playlistID string) error {
	return l.client.post(ctx, "/v1/playlists/"+playlistID+"/delete", nil, nil)
}
