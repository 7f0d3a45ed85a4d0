package spotify

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"tuneshell/pkg/tunetypes"
)

// QueryAccessor implements tunetypes.QueryReader over the shared client.
// Payloads are decoded as raw JSON and echoed verbatim to the caller.
type QueryAccessor struct {
	client *Client
}

// NewQueryAccessor creates the query accessor.
func NewQueryAccessor(client *Client) *QueryAccessor {
	return &QueryAccessor{client: client}
}

func (q *QueryAccessor) raw(ctx context.Context, path string, params url.Values) (any, error) {
	var data json.RawMessage
	if err := q.client.get(ctx, path, params, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// NowPlaying returns the current playback state.
func (q *QueryAccessor) NowPlaying(ctx context.Context) (any, error) {
	return q.raw(ctx, "/v1/player/state", nil)
}

// GetQueue returns the upcoming tracks.
func (q *QueryAccessor) GetQueue(ctx context.Context) (any, error) {
	return q.raw(ctx, "/v1/player/queue", nil)
}

// GetDevices returns the live device list.
func (q *QueryAccessor) GetDevices(ctx context.Context) ([]tunetypes.Device, error) {
	var resp struct {
		Devices []tunetypes.Device `json:"devices"`
	}
	if err := q.client.get(ctx, "/v1/player/devices", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Devices, nil
}

// Library lists library contents, optionally filtered by kind.
func (q *QueryAccessor) Library(ctx context.Context, kind string, limit, offset int) (any, error) {
	params := url.Values{}
	if kind != "" {
		params.Set("type", kind)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	return q.raw(ctx, "/v1/library", params)
}

// Info returns metadata for one canonical URI.
func (q *QueryAccessor) Info(ctx context.Context, uri string) (any, error) {
	params := url.Values{}
	params.Set("uri", uri)
	return q.raw(ctx, "/v1/info", params)
}

// History returns recently played tracks; limit 0 means no limit.
func (q *QueryAccessor) History(ctx context.Context, limit int) (any, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return q.raw(ctx, "/v1/player/history", params)
}

// Recommend returns n recommendations seeded by forURI.
func (q *QueryAccessor) Recommend(ctx context.Context, n int, forURI string) (any, error) {
	params := url.Values{}
	params.Set("n", strconv.Itoa(n))
	params.Set("for", forURI)
	return q.raw(ctx, "/v1/recommend", params)
}
