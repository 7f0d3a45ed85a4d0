package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuneshell/internal/executor"
	"tuneshell/internal/session"
	"tuneshell/pkg/tunetypes"
)

type fakePlayback struct {
	calls []string
	err   error
}

func (p *fakePlayback) Play(_ context.Context, uri, contextURI string) error {
	p.calls = append(p.calls, "play")
	return p.err
}
func (p *fakePlayback) Pause(context.Context) error {
	p.calls = append(p.calls, "pause")
	return p.err
}
func (p *fakePlayback) Resume(context.Context) error {
	p.calls = append(p.calls, "resume")
	return p.err
}
func (p *fakePlayback) Skip(context.Context, int) error     { return p.err }
func (p *fakePlayback) Seek(context.Context, int) error     { return p.err }
func (p *fakePlayback) Queue(context.Context, string) error { return p.err }
func (p *fakePlayback) SetVolume(context.Context, float64) error {
	p.calls = append(p.calls, "set_volume")
	return p.err
}
func (p *fakePlayback) SetMode(context.Context, tunetypes.Mode) error { return p.err }
func (p *fakePlayback) SetDevice(context.Context, string) error       { return p.err }
func (p *fakePlayback) Close() error                                  { return nil }

func newTestSession(playback *fakePlayback) *session.Session {
	return session.New(executor.Factories{
		Playback: func() (tunetypes.PlaybackController, error) { return playback, nil },
		Library:  func() (tunetypes.LibraryEditor, error) { return nil, errors.New("no library") },
		Query:    func() (tunetypes.QueryReader, error) { return nil, errors.New("no query") },
		Search:   func() (tunetypes.Searcher, error) { return nil, errors.New("no search") },
	})
}

func TestShell_RunsCommandsAndPrintsResponses(t *testing.T) {
	playback := &fakePlayback{}
	sess := newTestSession(playback)
	defer func() { _ = sess.Close() }()

	var out bytes.Buffer
	sh := New(sess, &out, false)
	err := sh.Run(context.Background(), strings.NewReader("pause\nresume\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"pause", "resume"}, playback.calls)
	assert.Contains(t, out.String(), `"status": "ok"`)
	assert.Contains(t, out.String(), `"kind": "pause"`)
}

func TestShell_SkipsBlankAndCommentLines(t *testing.T) {
	playback := &fakePlayback{}
	sess := newTestSession(playback)
	defer func() { _ = sess.Close() }()

	var out bytes.Buffer
	sh := New(sess, &out, false)
	err := sh.Run(context.Background(), strings.NewReader("\n# a comment\n   \npause\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"pause"}, playback.calls)
}

func TestShell_ExitStopsLoop(t *testing.T) {
	playback := &fakePlayback{}
	sess := newTestSession(playback)
	defer func() { _ = sess.Close() }()

	var out bytes.Buffer
	sh := New(sess, &out, false)
	err := sh.Run(context.Background(), strings.NewReader("pause\nexit\nresume\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"pause"}, playback.calls)
}

func TestShell_ErrorsDoNotStopLoop(t *testing.T) {
	playback := &fakePlayback{}
	sess := newTestSession(playback)
	defer func() { _ = sess.Close() }()

	var out bytes.Buffer
	sh := New(sess, &out, false)
	err := sh.Run(context.Background(), strings.NewReader("explode\npause\n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "error (syntax):")
	assert.Equal(t, []string{"pause"}, playback.calls)
}

func TestShell_InteractivePrompt(t *testing.T) {
	sess := newTestSession(&fakePlayback{})
	defer func() { _ = sess.Close() }()

	var out bytes.Buffer
	sh := New(sess, &out, true)
	err := sh.Run(context.Background(), strings.NewReader("pause\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "tune> "))
}
