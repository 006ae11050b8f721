package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/api/metrics"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes visit records to a fixed set of workers using consistent
// hashing on the client ID, guaranteeing per-client ordering against the
// membership service.
type Dispatcher struct {
	workers []chan ports.VisitInput
	service ports.VisitService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.VisitService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.VisitInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.VisitInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a visit to the worker responsible for its client.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(visit ports.VisitInput) {
	idx := d.shardIndex(visit.ClientID)
	d.workers[idx] <- visit
	metrics.VisitsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a client ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(clientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.VisitInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case visit, ok := <-ch:
			if !ok {
				return
			}
			metrics.VisitsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, visit); err != nil {
				metrics.VisitsErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("client_id", visit.ClientID).
					Int("worker_id", id).
					Msg("visit processing failed")
				continue
			}
			metrics.VisitsRecordedTotal.Inc()
		}
	}
}
