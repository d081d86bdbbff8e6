package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/roundplan/internal/config"
	"github.com/katalvlaran/roundplan/network"
)

// Sinks receives the two artifacts of a solve. Nil writers are skipped;
// Mirror gets both artifacts in order.
type Sinks struct {
	Rounds     io.Writer
	Allocation io.Writer
	Mirror     io.Writer
}

// Encode writes g in instance format, edges in insertion order.
func Encode(w io.Writer, g *network.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1)
	}

	return errors.Wrap(bw.Flush(), "encode instance")
}

// Persist writes rounds as a single line and allocation as one
// "<id> <round>" line per server.
func Persist(rounds int, allocation []int, sinks Sinks) error {
	rw := bufio.NewWriter(tee(sinks.Rounds, sinks.Mirror))
	fmt.Fprintf(rw, "%d\n", rounds)
	if err := rw.Flush(); err != nil {
		return errors.Wrap(err, "write rounds")
	}

	aw := bufio.NewWriter(tee(sinks.Allocation, sinks.Mirror))
	for i, r := range allocation {
		fmt.Fprintf(aw, "%d %d\n", i+1, r)
	}
	if err := aw.Flush(); err != nil {
		return errors.Wrap(err, "write allocation")
	}

	return nil
}

// SaveFiles creates out.Dir if needed and persists into the configured
// file names, echoing to mirror when it is non-nil. It returns the two paths.
func SaveFiles(out config.OutputConfig, rounds int, allocation []int, mirror io.Writer) (string, string, error) {
	dir := out.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", errors.Wrapf(err, "create output dir %s", dir)
	}

	roundsPath := filepath.Join(dir, out.RoundsFile)
	allocPath := filepath.Join(dir, out.AllocationFile)

	rf, err := os.Create(roundsPath)
	if err != nil {
		return "", "", errors.Wrap(err, "create rounds file")
	}
	defer rf.Close()
	af, err := os.Create(allocPath)
	if err != nil {
		return "", "", errors.Wrap(err, "create allocation file")
	}
	defer af.Close()

	if err = Persist(rounds, allocation, Sinks{Rounds: rf, Allocation: af, Mirror: mirror}); err != nil {
		return "", "", err
	}
	if err = rf.Close(); err != nil {
		return "", "", errors.Wrap(err, "close rounds file")
	}
	if err = af.Close(); err != nil {
		return "", "", errors.Wrap(err, "close allocation file")
	}

	return roundsPath, allocPath, nil
}

func tee(ws ...io.Writer) io.Writer {
	live := make([]io.Writer, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			live = append(live, w)
		}
	}

	return io.MultiWriter(live...)
}
