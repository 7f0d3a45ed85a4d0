package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuneshell/pkg/tunetypes"
)

func ptr[T any](v T) *T { return &v }

func TestValidate_ActionWithStateModifiers(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:    tunetypes.KindPlay,
		Primary: tunetypes.TextTarget("jazz"),
		State:   tunetypes.StateModifiers{Volume: ptr(0.7)},
	}
	out, err := Validate(cmd)
	require.NoError(t, err)
	assert.Same(t, cmd, out)
}

func TestValidate_QueryWithQueryModifiers(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:  tunetypes.KindSearch,
		Term:  "jazz",
		Query: tunetypes.QueryModifiers{Limit: ptr(10)},
	}
	_, err := Validate(cmd)
	assert.NoError(t, err)
}

func TestValidate_StateModifierOnQueryRejected(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:  tunetypes.KindSearch,
		Term:  "jazz",
		State: tunetypes.StateModifiers{Volume: ptr(0.5)},
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
	assert.Contains(t, err.Error(), "query")
}

func TestValidate_ModeOnQueryRejected(t *testing.T) {
	mode := tunetypes.ModeShuffle
	cmd := &tunetypes.Command{
		Kind:  tunetypes.KindNowPlaying,
		State: tunetypes.StateModifiers{Mode: &mode},
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestValidate_DeviceOnQueryRejected(t *testing.T) {
	dev := tunetypes.TextTarget("Kitchen")
	cmd := &tunetypes.Command{
		Kind:  tunetypes.KindHistory,
		State: tunetypes.StateModifiers{Device: &dev},
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device")
}

func TestValidate_QueryModifierOnActionRejected(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:    tunetypes.KindPlay,
		Primary: tunetypes.TextTarget("jazz"),
		Query:   tunetypes.QueryModifiers{Limit: ptr(5)},
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
	assert.Contains(t, err.Error(), "action")
}

func TestValidate_OffsetOnActionRejected(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:  tunetypes.KindPause,
		Query: tunetypes.QueryModifiers{Offset: ptr(3)},
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset")
}

func TestValidate_AddRequiresBothOperands(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:    tunetypes.KindAdd,
		Primary: tunetypes.URITarget("spotify:track:abc"),
	}
	_, err := Validate(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")
}

func TestValidate_RemoveRequiresBothOperands(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:      tunetypes.KindRemove,
		Secondary: tunetypes.URITarget("spotify:playlist:def"),
	}
	_, err := Validate(cmd)
	assert.Error(t, err)
}

func TestValidate_AddWithBothOperands(t *testing.T) {
	cmd := &tunetypes.Command{
		Kind:      tunetypes.KindAdd,
		Primary:   tunetypes.URITarget("spotify:track:abc"),
		Secondary: tunetypes.URITarget("spotify:playlist:def"),
	}
	_, err := Validate(cmd)
	assert.NoError(t, err)
}

func TestValidate_PlainCommandsPass(t *testing.T) {
	for _, kind := range []tunetypes.Kind{
		tunetypes.KindPause,
		tunetypes.KindResume,
		tunetypes.KindSet,
		tunetypes.KindNowPlaying,
		tunetypes.KindGetDevices,
	} {
		_, err := Validate(&tunetypes.Command{Kind: kind})
		assert.NoError(t, err, "kind %s", kind)
	}
}
