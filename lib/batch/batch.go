// Package batch fans a sequence of raw frames out over a fixed worker
// pool, preserving input order in the result slice without a merge step.
// Grounded on k3it-stratux/main/flarm-nmea.go's channel-based goroutine
// fan-out and the teacher's sync.Mutex-guarded Frame.decodeLock, combined
// into an index-tagged job channel drained by a fixed pool, each job's
// result written directly into its input-ordered slot.
package batch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

// Job is one unit of batch work: a raw frame paired with its input index.
type Job struct {
	Index int
	Raw   []byte
}

// Result pairs a decode outcome with the job's original index, so callers
// assembling a final slice never need to track ordering themselves.
type Result struct {
	Index   int
	Message *mode_s.DecodedMessage
	Err     error
}

// cancelled is a cooperative flag: workers check it between frames and
// stop picking up new jobs, but never abort a frame mid-decode.
type coordinator struct {
	cancelled int32
}

func (c *coordinator) Cancel() {
	atomic.StoreInt32(&c.cancelled, 1)
}

func (c *coordinator) isCancelled() bool {
	return atomic.LoadInt32(&c.cancelled) == 1
}

// Decode distributes frames across workers worker goroutines (a count
// below 1 is treated as 1), decoding each independently with mode_s.Decode, and
// returns results in input order. The returned batch id is a uuid
// correlating this call's work across logs.
func Decode(ctx context.Context, frames [][]byte, workers int, opts ...mode_s.Option) (uuid.UUID, []Result) {
	id := uuid.New()
	results := make([]Result, len(frames))
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan Job, len(frames))
	for i, raw := range frames {
		jobs <- Job{Index: i, Raw: raw}
	}
	close(jobs)

	coord := &coordinator{}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			coord.Cancel()
		case <-done:
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				if coord.isCancelled() {
					return
				}
				msg, err := mode_s.Decode(job.Raw, opts...)
				results[job.Index] = Result{Index: job.Index, Message: msg, Err: err}
			}
		}()
	}
	wg.Wait()

	return id, results
}
