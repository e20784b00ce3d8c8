// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/mix"
)

// MixJob is one independent voice-over-music mix in a batch.
type MixJob struct {
	Voice  *audio.Buffer
	Music  *audio.Buffer
	Config mix.Config
}

// MixBatch runs independent mixes across at most workers goroutines and
// returns the results in job order. workers <= 0 means one per CPU.
//
// The first failing job cancels the batch; jobs not yet started are
// skipped, while jobs already running finish their transform, since the
// transforms themselves take no context. ctx cancellation is honored
// the same way, at job boundaries.
func MixBatch(ctx context.Context, jobs []MixJob, workers int) ([]*mix.Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*mix.Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := mix.VoiceOverMusic(job.Voice, job.Music, job.Config)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("mix batch: %w", err)
	}

	return results, nil
}
