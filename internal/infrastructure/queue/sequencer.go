package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/pkg/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrStopped is returned for work submitted after the sequencer stopped.
var ErrStopped = errors.New("sequencer stopped")

const (
	jobQueued int32 = iota
	jobClaimed
	jobAbandoned
)

type job struct {
	ctx   context.Context
	key   string
	fn    func(context.Context) error
	done  chan error
	state *atomic.Int32
}

// claim marks the job as picked up by a worker. It fails when the caller
// already gave up on it.
func (j job) claim() bool { return j.state.CompareAndSwap(jobQueued, jobClaimed) }

// abandon marks a queued job as skipped. It fails when a worker already
// claimed it, in which case the caller must wait for done.
func (j job) abandon() bool { return j.state.CompareAndSwap(jobQueued, jobAbandoned) }

// Sequencer routes keyed work to a fixed set of workers using consistent
// hashing on the key, so work for one key runs one at a time and in
// submission order while different keys proceed in parallel.
type Sequencer struct {
	workers []chan job
	log     zerolog.Logger

	startOnce sync.Once
	stopped   chan struct{}
}

// NewSequencer creates a Sequencer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. Call Start before Do.
func NewSequencer(numWorkers int, log zerolog.Logger) *Sequencer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	s := &Sequencer{
		workers: make([]chan job, numWorkers),
		log:     log,
		stopped: make(chan struct{}),
	}
	for i := range s.workers {
		s.workers[i] = make(chan job, channelBuffer)
	}
	return s
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// work still queued at that point fails with ErrStopped.
func (s *Sequencer) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		for i, ch := range s.workers {
			go s.runWorker(ctx, i, ch)
		}
		go func() {
			<-ctx.Done()
			close(s.stopped)
		}()
	})
}

// Do runs fn on the worker that owns key and waits for its result. If ctx
// ends or the sequencer stops while the job is still queued, the job is
// skipped and Do returns ctx.Err() or ErrStopped. Once a worker picked the
// job up, Do always returns fn's own result.
func (s *Sequencer) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	idx := s.shardIndex(key)
	j := job{ctx: ctx, key: key, fn: fn, done: make(chan error, 1), state: new(atomic.Int32)}

	select {
	case <-s.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case s.workers[idx] <- j:
		metrics.WriteQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	}

	var giveUp error
	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		giveUp = ctx.Err()
	case <-s.stopped:
		giveUp = ErrStopped
	}
	if j.abandon() {
		return giveUp
	}
	return <-j.done
}

// shardIndex maps a key deterministically to a worker index.
func (s *Sequencer) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.workers)))
}

func (s *Sequencer) runWorker(ctx context.Context, id int, ch <-chan job) {
	depth := metrics.WriteQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-ch:
			depth.Dec()
			if !j.claim() {
				continue
			}
			if err := j.ctx.Err(); err != nil {
				j.done <- err
				continue
			}
			err := s.run(j)
			if err != nil {
				s.log.Debug().Err(err).
					Str("key", j.key).
					Int("worker_id", id).
					Msg("sequenced write failed")
			}
			j.done <- err
		}
	}
}

func (s *Sequencer) run(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sequenced write panicked: %v", r)
			s.log.Error().Str("key", j.key).Interface("panic", r).Msg("recovered from panic in write")
		}
	}()
	return j.fn(j.ctx)
}
