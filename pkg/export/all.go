package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/model"
)

// maxParallelSnapshots bounds concurrent renders
const maxParallelSnapshots = 4

// BoardSource lists the workspaces whose boards are exported
type BoardSource interface {
	Workspaces() []model.Workspace
}

// SnapshotFileName is the file written for one board, e.g. "softdev-veis.svg"
func SnapshotFileName(workspaceID, boardID, format string) string {
	return fmt.Sprintf("%s-%s.%s", workspaceID, boardID, format)
}

// ExportAll writes one snapshot per board into dir, rendering in parallel.
// The first failure cancels the remaining renders. Written paths are
// returned in corpus order.
func ExportAll(ctx context.Context, src BoardSource, dir, format string, log zerolog.Logger) ([]string, error) {
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("unsupported snapshot format %q (want svg or png)", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	type job struct {
		opts SnapshotOptions
		idx  int
	}
	var jobs []job
	for _, ws := range src.Workspaces() {
		for _, b := range ws.Boards {
			jobs = append(jobs, job{
				idx: len(jobs),
				opts: SnapshotOptions{
					Path:          filepath.Join(dir, SnapshotFileName(ws.ID, b.ID, format)),
					Format:        format,
					Board:         b,
					WorkspaceName: ws.Name,
					Visibility:    board.VisibilityFor(ws.ID),
				},
			})
		}
	}

	paths := make([]string, len(jobs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSnapshots)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := SaveBoardSnapshot(j.opts); err != nil {
				return fmt.Errorf("board %s: %w", j.opts.Board.ID, err)
			}
			log.Debug().Str("path", j.opts.Path).Msg("snapshot written")
			mu.Lock()
			paths[j.idx] = j.opts.Path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("boards", len(paths)).Str("dir", dir).Str("format", format).Msg("export complete")
	return paths, nil
}
