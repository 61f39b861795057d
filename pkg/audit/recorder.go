package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecorderConfig contains configuration for the async recorder.
type RecorderConfig struct {
	// Enabled enables audit recording. A disabled recorder drops all
	// records silently.
	Enabled bool

	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout is the timeout for writing a record to storage.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultRecorderConfig returns the default recorder configuration.
func DefaultRecorderConfig() *RecorderConfig {
	return &RecorderConfig{
		Enabled:      true,
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder writes audit records asynchronously so chat requests never
// block on storage. A nil Recorder is valid and records nothing.
type Recorder struct {
	storage    Storage
	config     *RecorderConfig
	recordChan chan *Record
	wg         sync.WaitGroup
	done       chan struct{}
	logger     *slog.Logger
}

// NewRecorder creates a recorder over the given storage backend and starts
// its background writer.
func NewRecorder(storage Storage, config *RecorderConfig) *Recorder {
	if config == nil {
		config = DefaultRecorderConfig()
	}

	r := &Recorder{
		storage:    storage,
		config:     config,
		recordChan: make(chan *Record, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "audit.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("audit recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
	)

	return r
}

// Record enqueues an audit record for async writing. It fills in the ID
// and timestamp when unset and returns immediately; a full buffer drops
// the record with an error log rather than blocking the request.
func (r *Recorder) Record(record *Record) {
	if r == nil || !r.config.Enabled {
		return
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Time.IsZero() {
		record.Time = time.Now()
	}

	select {
	case r.recordChan <- record:
	case <-r.done:
		r.logger.Warn("recorder shutting down, dropping record",
			"request_id", record.RequestID,
		)
	default:
		r.logger.Error("audit channel full, dropping record",
			"request_id", record.RequestID,
			"channel_capacity", r.config.AsyncBuffer,
		)
	}
}

// Recent returns the most recent n records from storage.
func (r *Recorder) Recent(ctx context.Context, n int) ([]*Record, error) {
	if r == nil || !r.config.Enabled {
		return nil, nil
	}
	return r.storage.Recent(ctx, n)
}

// Close drains the channel, waits for pending writes, and closes storage.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}

	r.logger.Info("shutting down audit recorder")

	close(r.done)
	r.wg.Wait()

	if r.storage != nil {
		return r.storage.Close()
	}
	return nil
}

// worker drains the record channel and writes records to storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.recordChan:
			r.writeRecord(record)

		case <-r.done:
			for {
				select {
				case record := <-r.recordChan:
					r.writeRecord(record)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) writeRecord(record *Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, record); err != nil {
		r.logger.Error("failed to store audit record",
			"record_id", record.ID,
			"request_id", record.RequestID,
			"error", err,
		)
		return
	}

	r.logger.Debug("audit record stored",
		"record_id", record.ID,
		"outcome", record.Outcome,
		"backend", record.Backend,
	)
}
