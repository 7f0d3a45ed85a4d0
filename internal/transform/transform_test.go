package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuneshell/internal/parser"
	"tuneshell/pkg/tunetypes"
)

func transform(t *testing.T, input string) *tunetypes.Command {
	t.Helper()
	line, err := parser.Parse(input)
	require.NoError(t, err)
	cmd, err := Transform(line)
	require.NoError(t, err)
	return cmd
}

func transformErr(t *testing.T, input string) error {
	t.Helper()
	line, err := parser.Parse(input)
	require.NoError(t, err)
	_, err = Transform(line)
	require.Error(t, err)
	return err
}

func TestTransform_PlayMapsTargets(t *testing.T) {
	cmd := transform(t, `play "Bohemian Rhapsody" in spotify:playlist:abc`)
	assert.Equal(t, tunetypes.KindPlay, cmd.Kind)
	assert.Equal(t, "Bohemian Rhapsody", cmd.Primary.Text)
	assert.Equal(t, "spotify:playlist:abc", cmd.Secondary.URI)
}

func TestTransform_SkipDefaultsToOne(t *testing.T) {
	cmd := transform(t, "skip")
	assert.Equal(t, 1, cmd.SkipCount)
}

func TestTransform_SkipNegativeIsBackward(t *testing.T) {
	cmd := transform(t, "skip -1")
	assert.Equal(t, -1, cmd.SkipCount)
}

func TestTransform_SkipFractionalRejected(t *testing.T) {
	err := transformErr(t, "skip 1.5")
	assert.Contains(t, err.Error(), "integer")
}

func TestTransform_SeekPositionMS(t *testing.T) {
	cmd := transform(t, "seek 30000")
	assert.Equal(t, 30000, cmd.SeekMS)
}

func TestTransform_SeekNegativeRejected(t *testing.T) {
	err := transformErr(t, "seek -5")
	assert.Contains(t, err.Error(), "negative")
}

func TestTransform_SeekHugeLiteralRejected(t *testing.T) {
	err := transformErr(t, "seek 99999999999999999999")
	assert.Contains(t, err.Error(), "out of range")
}

func TestTransform_SkipHugeLiteralRejected(t *testing.T) {
	err := transformErr(t, "skip 9999999999")
	assert.Contains(t, err.Error(), "out of range")
}

func TestTransform_VolumePercentNormalized(t *testing.T) {
	cmd := transform(t, "volume 70")
	require.NotNil(t, cmd.State.Volume)
	assert.InDelta(t, 0.7, *cmd.State.Volume, 1e-9)
}

func TestTransform_VolumeFractionKept(t *testing.T) {
	cmd := transform(t, "volume 0.7")
	require.NotNil(t, cmd.State.Volume)
	assert.InDelta(t, 0.7, *cmd.State.Volume, 1e-9)
}

func TestTransform_VolumeBoundaryOne(t *testing.T) {
	// 1 is on the fraction side of the rule, so it means full volume.
	cmd := transform(t, "volume 1")
	assert.Equal(t, 1.0, *cmd.State.Volume)

	cmd = transform(t, "volume 100")
	assert.Equal(t, 1.0, *cmd.State.Volume)
}

func TestTransform_VolumeOutOfRange(t *testing.T) {
	err := transformErr(t, "volume 150")
	assert.Contains(t, err.Error(), "volume")

	err = transformErr(t, "volume -3")
	assert.Contains(t, err.Error(), "volume")
}

func TestTransform_StandaloneModifiersBecomeSet(t *testing.T) {
	cmd := transform(t, `volume 50 mode shuffle on "Kitchen"`)
	assert.Equal(t, tunetypes.KindSet, cmd.Kind)
	assert.InDelta(t, 0.5, *cmd.State.Volume, 1e-9)
	assert.Equal(t, tunetypes.ModeShuffle, *cmd.State.Mode)
	assert.Equal(t, "Kitchen", cmd.State.Device.Text)
}

func TestTransform_ModeWords(t *testing.T) {
	assert.Equal(t, tunetypes.ModeShuffle, *transform(t, "mode shuffle").State.Mode)
	assert.Equal(t, tunetypes.ModeRepeat, *transform(t, "mode repeat").State.Mode)
	assert.Equal(t, tunetypes.ModeNormal, *transform(t, "mode normal").State.Mode)
}

func TestTransform_SearchTermAndType(t *testing.T) {
	cmd := transform(t, `search "jazz" artists`)
	assert.Equal(t, tunetypes.KindSearch, cmd.Kind)
	assert.Equal(t, "jazz", cmd.Term)
	assert.Equal(t, "artists", cmd.SearchType)
}

func TestTransform_QueryModifiers(t *testing.T) {
	cmd := transform(t, `search "rock" limit 20 offset 40`)
	require.NotNil(t, cmd.Query.Limit)
	assert.Equal(t, 20, *cmd.Query.Limit)
	require.NotNil(t, cmd.Query.Offset)
	assert.Equal(t, 40, *cmd.Query.Offset)
}

func TestTransform_NegativeLimitRejected(t *testing.T) {
	err := transformErr(t, `search "rock" limit -5`)
	assert.Contains(t, err.Error(), "limit")
}

func TestTransform_NegativeOffsetRejected(t *testing.T) {
	err := transformErr(t, `search "rock" offset -1`)
	assert.Contains(t, err.Error(), "offset")
}

func TestTransform_RecommendDefaultCount(t *testing.T) {
	cmd := transform(t, "recommend for spotify:playlist:abc")
	assert.Equal(t, 20, cmd.RecommendCount)
}

func TestTransform_RecommendExplicitCount(t *testing.T) {
	cmd := transform(t, "recommend 5 for spotify:playlist:abc")
	assert.Equal(t, 5, cmd.RecommendCount)
}

func TestTransform_CreatePlaylistName(t *testing.T) {
	cmd := transform(t, `create playlist "Road Trip"`)
	assert.Equal(t, tunetypes.KindCreatePlaylist, cmd.Kind)
	assert.Equal(t, "Road Trip", cmd.PlaylistName)
}

func TestTransform_LibraryTypeFilter(t *testing.T) {
	cmd := transform(t, "library artists")
	assert.Equal(t, tunetypes.KindLibrary, cmd.Kind)
	assert.Equal(t, "artists", cmd.LibraryType)
}

func TestTransform_NoValidationHere(t *testing.T) {
	// Cross-family composition is the validator's job, not the transformer's.
	cmd := transform(t, `search "jazz" volume 0.5`)
	assert.Equal(t, tunetypes.KindSearch, cmd.Kind)
	require.NotNil(t, cmd.State.Volume)
}
