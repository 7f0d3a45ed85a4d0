// Package shell provides the interactive line loop for tuneshell. It feeds
// input lines through a session and renders the Response or DSLError for
// each one.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"tuneshell/internal/logger"
	"tuneshell/internal/session"
	"tuneshell/pkg/tunetypes"
)

const prompt = "tune> "

// Shell drives one session from a line-oriented input stream.
type Shell struct {
	session     *session.Session
	out         io.Writer
	interactive bool
	log         *log.Logger
}

// New creates a Shell writing results to out. Interactive mode prints a
// prompt before each line.
func New(sess *session.Session, out io.Writer, interactive bool) *Shell {
	return &Shell{
		session:     sess,
		out:         out,
		interactive: interactive,
		log:         logger.NewStyledLogger("Shell"),
	}
}

// Run reads lines from in until EOF. Blank lines and comment lines
// (starting with #) are skipped. Command failures are printed but do not
// stop the loop; only a read error stops it.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		s.runLine(ctx, line)
	}
	return scanner.Err()
}

func (s *Shell) runLine(ctx context.Context, line string) {
	resp, err := s.session.Run(ctx, line)
	if err != nil {
		var dslErr *tunetypes.DSLError
		if errors.As(err, &dslErr) {
			s.log.Debug("Command rejected", "kind", dslErr.Kind.String(), "input", dslErr.Input)
			fmt.Fprintf(s.out, "error (%s): %s\n", dslErr.Kind, dslErr.Message)
			return
		}
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(s.out, "error: rendering response: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s\n", data)
}
