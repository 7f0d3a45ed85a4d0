// Package executor maps validated, resolved commands onto collaborator
// calls. Collaborator handles are constructed lazily on first use and cached
// for the lifetime of the owning session: the playback controller (which
// opens a persistent real-time connection) only comes up when a
// playback-affecting command arrives, and the read-only accessors come up
// independently. Close tears the handles down in reverse creation order.
package executor

import (
	"context"
	"fmt"
	"io"

	"tuneshell/internal/logger"
	"tuneshell/pkg/tunetypes"
)

const (
	defaultSearchLimit  = 10
	defaultLibraryLimit = 50
)

// Factories supply the collaborator constructors. Each is invoked at most
// once per Executor, on first demand.
type Factories struct {
	Playback func() (tunetypes.PlaybackController, error)
	Library  func() (tunetypes.LibraryEditor, error)
	Query    func() (tunetypes.QueryReader, error)
	Search   func() (tunetypes.Searcher, error)
}

// Executor dispatches commands to collaborators. It is not safe for
// concurrent use on its own; the owning session serializes access so there
// is a single in-flight command at a time.
type Executor struct {
	factories Factories

	playback tunetypes.PlaybackController
	library  tunetypes.LibraryEditor
	query    tunetypes.QueryReader
	search   tunetypes.Searcher

	closers []io.Closer // in creation order; closed in reverse
	closed  bool
}

// New creates an Executor with no collaborators constructed yet.
func New(factories Factories) *Executor {
	return &Executor{factories: factories}
}

// --- lazy collaborator handles ---

func (e *Executor) playbackHandle() (tunetypes.PlaybackController, error) {
	if e.playback == nil {
		logger.Debug("Constructing playback controller")
		p, err := e.factories.Playback()
		if err != nil {
			return nil, fmt.Errorf("constructing playback controller: %w", err)
		}
		e.playback = p
		e.closers = append(e.closers, p)
	}
	return e.playback, nil
}

func (e *Executor) libraryHandle() (tunetypes.LibraryEditor, error) {
	if e.library == nil {
		logger.Debug("Constructing library accessor")
		l, err := e.factories.Library()
		if err != nil {
			return nil, fmt.Errorf("constructing library accessor: %w", err)
		}
		e.library = l
		e.trackCloser(l)
	}
	return e.library, nil
}

func (e *Executor) queryHandle() (tunetypes.QueryReader, error) {
	if e.query == nil {
		logger.Debug("Constructing query accessor")
		q, err := e.factories.Query()
		if err != nil {
			return nil, fmt.Errorf("constructing query accessor: %w", err)
		}
		e.query = q
		e.trackCloser(q)
	}
	return e.query, nil
}

func (e *Executor) searchHandle() (tunetypes.Searcher, error) {
	if e.search == nil {
		logger.Debug("Constructing search accessor")
		s, err := e.factories.Search()
		if err != nil {
			return nil, fmt.Errorf("constructing search accessor: %w", err)
		}
		e.search = s
		e.trackCloser(s)
	}
	return e.search, nil
}

func (e *Executor) trackCloser(handle any) {
	if c, ok := handle.(io.Closer); ok {
		e.closers = append(e.closers, c)
	}
}

// Search implements tunetypes.Searcher by delegating to the lazily-built
// search accessor, so the resolver shares the session's cached handle.
func (e *Executor) Search(ctx context.Context, text string, hint tunetypes.SearchHint, limit, offset int) ([]tunetypes.SearchResult, error) {
	s, err := e.searchHandle()
	if err != nil {
		return nil, err
	}
	logger.CollaboratorCall("search", "search", "text", text, "hint", string(hint))
	return s.Search(ctx, text, hint, limit, offset)
}

// Devices implements tunetypes.DeviceLister through the query accessor.
// Device-name resolution uses this path rather than the search index.
func (e *Executor) Devices(ctx context.Context) ([]tunetypes.Device, error) {
	q, err := e.queryHandle()
	if err != nil {
		return nil, err
	}
	logger.CollaboratorCall("query", "get_devices")
	return q.GetDevices(ctx)
}

// Execute dispatches one validated, resolved command to exactly one
// collaborator call (plus any state-modifier calls) and shapes the result
// into a Response envelope.
func (e *Executor) Execute(ctx context.Context, cmd *tunetypes.Command) (*tunetypes.Response, error) {
	if e.closed {
		return nil, fmt.Errorf("executor is closed")
	}
	if cmd.Family() == tunetypes.FamilyAction {
		return e.executeAction(ctx, cmd)
	}
	return e.executeQuery(ctx, cmd)
}

func (e *Executor) executeAction(ctx context.Context, cmd *tunetypes.Command) (*tunetypes.Response, error) {
	resp := tunetypes.OKResponse(cmd.Kind)

	switch cmd.Kind {
	case tunetypes.KindPlay:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Play(ctx, cmd.Primary.URI, cmd.Secondary.URI); err != nil {
			return nil, fmt.Errorf("play failed: %w", err)
		}
		resp.ResolvedURI = cmd.Primary.URI
		resp.Context = cmd.Secondary.URI

	case tunetypes.KindPause:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Pause(ctx); err != nil {
			return nil, fmt.Errorf("pause failed: %w", err)
		}

	case tunetypes.KindResume:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Resume(ctx); err != nil {
			return nil, fmt.Errorf("resume failed: %w", err)
		}

	case tunetypes.KindSkip:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Skip(ctx, cmd.SkipCount); err != nil {
			return nil, fmt.Errorf("skip failed: %w", err)
		}
		resp.Count = cmd.SkipCount

	case tunetypes.KindSeek:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Seek(ctx, cmd.SeekMS); err != nil {
			return nil, fmt.Errorf("seek failed: %w", err)
		}
		resp.PositionMS = cmd.SeekMS

	case tunetypes.KindQueue:
		p, err := e.playbackHandle()
		if err != nil {
			return nil, err
		}
		if err := p.Queue(ctx, cmd.Primary.URI); err != nil {
			return nil, fmt.Errorf("queue failed: %w", err)
		}
		resp.ResolvedURI = cmd.Primary.URI

	case tunetypes.KindSet:
		// Standalone modifier line: no primary call, the modifier pass
		// below does all the work against the current playback context.

	case tunetypes.KindLike, tunetypes.KindUnlike, tunetypes.KindFollow, tunetypes.KindUnfollow,
		tunetypes.KindSave, tunetypes.KindUnsave:
		if err := e.executeLibrarySimple(ctx, cmd); err != nil {
			return nil, err
		}
		resp.Target = cmd.Primary.URI

	case tunetypes.KindAdd:
		l, err := e.libraryHandle()
		if err != nil {
			return nil, err
		}
		if err := l.Add(ctx, cmd.Primary.BareID(), cmd.Secondary.BareID()); err != nil {
			return nil, fmt.Errorf("add failed: %w", err)
		}
		resp.Target = cmd.Primary.URI
		resp.Context = cmd.Secondary.URI

	case tunetypes.KindRemove:
		l, err := e.libraryHandle()
		if err != nil {
			return nil, err
		}
		if err := l.Remove(ctx, cmd.Primary.BareID(), cmd.Secondary.BareID()); err != nil {
			return nil, fmt.Errorf("remove failed: %w", err)
		}
		resp.Target = cmd.Primary.URI
		resp.Context = cmd.Secondary.URI

	case tunetypes.KindCreatePlaylist:
		l, err := e.libraryHandle()
		if err != nil {
			return nil, err
		}
		id, err := l.CreatePlaylist(ctx, cmd.PlaylistName)
		if err != nil {
			return nil, fmt.Errorf("create playlist failed: %w", err)
		}
		resp.Target = cmd.PlaylistName
		resp.PlaylistID = id

	case tunetypes.KindDeletePlaylist:
		l, err := e.libraryHandle()
		if err != nil {
			return nil, err
		}
		if err := l.DeletePlaylist(ctx, cmd.Primary.BareID()); err != nil {
			return nil, fmt.Errorf("delete playlist failed: %w", err)
		}
		resp.Target = cmd.Primary.URI

	default:
		return nil, fmt.Errorf("unhandled action kind %s", cmd.Kind)
	}

	if err := e.applyStateModifiers(ctx, cmd, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// executeLibrarySimple covers the one-operand library mutations that differ
// only in which method they hit.
func (e *Executor) executeLibrarySimple(ctx context.Context, cmd *tunetypes.Command) error {
	l, err := e.libraryHandle()
	if err != nil {
		return err
	}
	id := cmd.Primary.BareID()
	switch cmd.Kind {
	case tunetypes.KindLike:
		err = l.Like(ctx, id)
	case tunetypes.KindUnlike:
		err = l.Unlike(ctx, id)
	case tunetypes.KindFollow:
		err = l.Follow(ctx, id)
	case tunetypes.KindUnfollow:
		err = l.Unfollow(ctx, id)
	case tunetypes.KindSave:
		err = l.Save(ctx, id)
	case tunetypes.KindUnsave:
		err = l.Unsave(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Kind, err)
	}
	return nil
}

// applyStateModifiers issues the trailing state changes in a fixed order:
// volume, then mode, then device.
func (e *Executor) applyStateModifiers(ctx context.Context, cmd *tunetypes.Command, resp *tunetypes.Response) error {
	if cmd.State.Empty() {
		return nil
	}
	p, err := e.playbackHandle()
	if err != nil {
		return err
	}
	if cmd.State.Volume != nil {
		if err := p.SetVolume(ctx, *cmd.State.Volume); err != nil {
			return fmt.Errorf("set volume failed: %w", err)
		}
		resp.Volume = cmd.State.Volume
	}
	if cmd.State.Mode != nil {
		if err := p.SetMode(ctx, *cmd.State.Mode); err != nil {
			return fmt.Errorf("set mode failed: %w", err)
		}
		resp.Mode = cmd.State.Mode
	}
	if cmd.State.Device != nil {
		if err := p.SetDevice(ctx, cmd.State.Device.URI); err != nil {
			return fmt.Errorf("set device failed: %w", err)
		}
		resp.Device = cmd.State.Device.URI
	}
	return nil
}

func (e *Executor) executeQuery(ctx context.Context, cmd *tunetypes.Command) (*tunetypes.Response, error) {
	resp := tunetypes.OKResponse(cmd.Kind)
	resp.Limit = cmd.Query.Limit
	resp.Offset = cmd.Query.Offset

	switch cmd.Kind {
	case tunetypes.KindSearch:
		s, err := e.searchHandle()
		if err != nil {
			return nil, err
		}
		results, err := s.Search(ctx, cmd.Term, searchHint(cmd.SearchType),
			limitOr(cmd.Query.Limit, defaultSearchLimit), offsetOr(cmd.Query.Offset))
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		resp.Term = cmd.Term
		resp.Type = cmd.SearchType
		resp.Data = results

	case tunetypes.KindNowPlaying:
		data, err := e.readQuery(ctx, cmd)
		if err != nil {
			return nil, err
		}
		resp.Data = data

	case tunetypes.KindGetQueue:
		data, err := e.readQuery(ctx, cmd)
		if err != nil {
			return nil, err
		}
		resp.Data = data

	case tunetypes.KindGetDevices:
		q, err := e.queryHandle()
		if err != nil {
			return nil, err
		}
		devices, err := q.GetDevices(ctx)
		if err != nil {
			return nil, fmt.Errorf("get devices failed: %w", err)
		}
		resp.Data = devices

	case tunetypes.KindLibrary:
		q, err := e.queryHandle()
		if err != nil {
			return nil, err
		}
		data, err := q.Library(ctx, cmd.LibraryType,
			limitOr(cmd.Query.Limit, defaultLibraryLimit), offsetOr(cmd.Query.Offset))
		if err != nil {
			return nil, fmt.Errorf("library failed: %w", err)
		}
		resp.Type = cmd.LibraryType
		resp.Data = data

	case tunetypes.KindInfo:
		q, err := e.queryHandle()
		if err != nil {
			return nil, err
		}
		data, err := q.Info(ctx, cmd.Primary.URI)
		if err != nil {
			return nil, fmt.Errorf("info failed: %w", err)
		}
		resp.Target = cmd.Primary.URI
		resp.Data = data

	case tunetypes.KindHistory:
		q, err := e.queryHandle()
		if err != nil {
			return nil, err
		}
		data, err := q.History(ctx, limitOr(cmd.Query.Limit, 0))
		if err != nil {
			return nil, fmt.Errorf("history failed: %w", err)
		}
		resp.Data = data

	case tunetypes.KindRecommend:
		q, err := e.queryHandle()
		if err != nil {
			return nil, err
		}
		data, err := q.Recommend(ctx, cmd.RecommendCount, cmd.Primary.URI)
		if err != nil {
			return nil, fmt.Errorf("recommend failed: %w", err)
		}
		resp.Target = cmd.Primary.URI
		resp.Count = cmd.RecommendCount
		resp.Data = data

	default:
		return nil, fmt.Errorf("unhandled query kind %s", cmd.Kind)
	}

	return resp, nil
}

// readQuery covers the no-argument reads.
func (e *Executor) readQuery(ctx context.Context, cmd *tunetypes.Command) (any, error) {
	q, err := e.queryHandle()
	if err != nil {
		return nil, err
	}
	switch cmd.Kind {
	case tunetypes.KindNowPlaying:
		data, err := q.NowPlaying(ctx)
		if err != nil {
			return nil, fmt.Errorf("now playing failed: %w", err)
		}
		return data, nil
	case tunetypes.KindGetQueue:
		data, err := q.GetQueue(ctx)
		if err != nil {
			return nil, fmt.Errorf("get queue failed: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unhandled query kind %s", cmd.Kind)
	}
}

// Close tears down all constructed collaborators in reverse order of
// creation. Closing an already-closed or never-used Executor is a no-op.
func (e *Executor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	var firstErr error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	e.closers = nil
	return firstErr
}

func searchHint(searchType string) tunetypes.SearchHint {
	switch searchType {
	case "artists":
		return tunetypes.HintArtist
	case "albums":
		return tunetypes.HintAlbum
	case "playlists":
		return tunetypes.HintPlaylist
	default:
		return tunetypes.HintTrack
	}
}

func limitOr(limit *int, fallback int) int {
	if limit != nil {
		return *limit
	}
	return fallback
}

func offsetOr(offset *int) int {
	if offset != nil {
		return *offset
	}
	return 0
}
