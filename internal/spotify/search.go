package spotify

import (
	"context"
	"net/url"
	"strconv"

	"tuneshell/pkg/tunetypes"
)

// SearchAccessor implements tunetypes.Searcher over the shared client.
type SearchAccessor struct {
	client *Client
}

// NewSearchAccessor creates the search accessor.
func NewSearchAccessor(client *Client) *SearchAccessor {
	return &SearchAccessor{client: client}
}

type searchResponse struct {
	Items []tunetypes.SearchResult `json:"items"`
}

// Search queries the remote search index. Results come back in the remote
// service's own ranking order, which callers treat as authoritative.
func (s *SearchAccessor) Search(ctx context.Context, text string, hint tunetypes.SearchHint, limit, offset int) ([]tunetypes.SearchResult, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("type", string(hint))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var resp searchResponse
	if err := s.client.get(ctx, "/v1/search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
