// Package transform maps a parse tree into a raw Command. The mapping is
// deterministic and side-effect free: one rule per grammar production, with
// numeric literals interpreted under their declared semantics. No resolution
// and no cross-field validation happens here.
package transform

import (
	"fmt"
	"math"

	"tuneshell/internal/parser"
	"tuneshell/pkg/tunetypes"
)

// Error reports a literal whose value falls outside its declared domain
// (fractional skip count, negative seek, volume out of range). These are
// lexical failures and surface as syntax errors at the Session boundary.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var verbKinds = map[string]tunetypes.Kind{
	"play":            tunetypes.KindPlay,
	"pause":           tunetypes.KindPause,
	"resume":          tunetypes.KindResume,
	"skip":            tunetypes.KindSkip,
	"seek":            tunetypes.KindSeek,
	"queue":           tunetypes.KindQueue,
	"like":            tunetypes.KindLike,
	"unlike":          tunetypes.KindUnlike,
	"follow":          tunetypes.KindFollow,
	"unfollow":        tunetypes.KindUnfollow,
	"save":            tunetypes.KindSave,
	"unsave":          tunetypes.KindUnsave,
	"add":             tunetypes.KindAdd,
	"remove":          tunetypes.KindRemove,
	"create_playlist": tunetypes.KindCreatePlaylist,
	"delete_playlist": tunetypes.KindDeletePlaylist,
	"search":          tunetypes.KindSearch,
	"now_playing":     tunetypes.KindNowPlaying,
	"get_queue":       tunetypes.KindGetQueue,
	"get_devices":     tunetypes.KindGetDevices,
	"library":         tunetypes.KindLibrary,
	"info":            tunetypes.KindInfo,
	"history":         tunetypes.KindHistory,
	"recommend":       tunetypes.KindRecommend,
}

const defaultRecommendCount = 20

// Transform assembles the raw Command for one parse tree.
func Transform(line *parser.LineNode) (*tunetypes.Command, error) {
	cmd := &tunetypes.Command{}

	if line.Stmt == nil {
		// Modifier-only line: implicit state change on the current
		// playback context.
		cmd.Kind = tunetypes.KindSet
	} else if err := transformStatement(line.Stmt, cmd); err != nil {
		return nil, err
	}

	for _, mod := range line.Modifiers {
		if err := applyModifier(mod, cmd); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

func transformStatement(stmt *parser.StatementNode, cmd *tunetypes.Command) error {
	kind, ok := verbKinds[stmt.Verb]
	if !ok {
		return errorf("unknown command %q", stmt.Verb)
	}
	cmd.Kind = kind
	cmd.Primary = targetOf(stmt.Primary)
	cmd.Secondary = targetOf(stmt.Secondary)

	switch kind {
	case tunetypes.KindSkip:
		cmd.SkipCount = 1
		if stmt.Number != nil {
			n, err := asInt(*stmt.Number, "skip count")
			if err != nil {
				return err
			}
			cmd.SkipCount = n
		}
	case tunetypes.KindSeek:
		n, err := asInt(*stmt.Number, "seek position")
		if err != nil {
			return err
		}
		if n < 0 {
			return errorf("seek position must not be negative, got %d", n)
		}
		cmd.SeekMS = n
	case tunetypes.KindRecommend:
		cmd.RecommendCount = defaultRecommendCount
		if stmt.Number != nil {
			n, err := asInt(*stmt.Number, "recommend count")
			if err != nil {
				return err
			}
			if n <= 0 {
				return errorf("recommend count must be positive, got %d", n)
			}
			cmd.RecommendCount = n
		}
	case tunetypes.KindSearch:
		cmd.Term = stmt.Name
		cmd.SearchType = stmt.TypeWord
	case tunetypes.KindLibrary:
		cmd.LibraryType = stmt.TypeWord
	case tunetypes.KindCreatePlaylist:
		cmd.PlaylistName = stmt.Name
	}
	return nil
}

func applyModifier(mod parser.ModifierNode, cmd *tunetypes.Command) error {
	switch mod.Name {
	case "volume":
		v, err := normalizeVolume(mod.Number)
		if err != nil {
			return err
		}
		cmd.State.Volume = &v
	case "mode":
		m, err := tunetypes.ParseMode(mod.Word)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		cmd.State.Mode = &m
	case "device":
		t := targetOf(mod.Target)
		cmd.State.Device = &t
	case "limit":
		n, err := asInt(mod.Number, "limit")
		if err != nil {
			return err
		}
		if n < 0 {
			return errorf("limit must not be negative, got %d", n)
		}
		cmd.Query.Limit = &n
	case "offset":
		n, err := asInt(mod.Number, "offset")
		if err != nil {
			return err
		}
		if n < 0 {
			return errorf("offset must not be negative, got %d", n)
		}
		cmd.Query.Offset = &n
	default:
		return errorf("unknown modifier %q", mod.Name)
	}
	return nil
}

// normalizeVolume applies the single global volume rule: values above 1 are
// percentages, values in [0,1] are fractions. The internal representation is
// always [0.0, 1.0].
func normalizeVolume(v float64) (float64, error) {
	if v < 0 || v > 100 {
		return 0, errorf("volume must be between 0 and 100 (or 0.0 and 1.0), got %v", v)
	}
	if v > 1 {
		v = v / 100
	}
	return v, nil
}

func asInt(v float64, what string) (int, error) {
	if v != math.Trunc(v) {
		return 0, errorf("%s must be an integer, got %v", what, v)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errorf("%s is out of range, got %v", what, v)
	}
	return int(v), nil
}

func targetOf(node *parser.TargetNode) tunetypes.Target {
	if node == nil {
		return tunetypes.Target{}
	}
	if node.URI != "" {
		return tunetypes.URITarget(node.URI)
	}
	return tunetypes.TextTarget(node.Text)
}
