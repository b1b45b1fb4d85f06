package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrAborted is returned by callers of the gate when the user declines
// to continue. Nothing has been generated or written at that point.
var ErrAborted = errors.New("aborted")

// Warning is any advisory condition the gate can surface
type Warning interface {
	Message() string
}

// Gate is the single interactive decision point before generation.
// AssumeYes is explicit state threaded through from configuration,
// never a package-level flag, so the rest of the pipeline stays pure.
type Gate struct {
	AssumeYes bool
	In        io.Reader
	Out       io.Writer
	Logger    *log.Logger
}

// New returns a gate wired to the process terminal
func New(assumeYes bool, logger *log.Logger) *Gate {
	return &Gate{
		AssumeYes: assumeYes,
		In:        os.Stdin,
		Out:       os.Stderr,
		Logger:    logger,
	}
}

// Confirm reports whether generation should proceed. With no warnings
// it always proceeds. With AssumeYes the warnings are surfaced as
// informational output only. Otherwise it blocks on the gate's reader
// and only an explicit "y" or "yes" proceeds.
func (g *Gate) Confirm(warnings []Warning) (bool, error) {
	if len(warnings) == 0 {
		return true, nil
	}
	for _, w := range warnings {
		fmt.Fprintf(g.Out, "WARNING: %s\n", w.Message())
	}
	if g.AssumeYes {
		if g.Logger != nil {
			g.Logger.Info("continuing past warnings", "warnings", len(warnings), "assume_yes", true)
		}
		return true, nil
	}
	fmt.Fprint(g.Out, "Continue anyway? [y/N]: ")
	line, err := bufio.NewReader(g.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
