// Package scanner implements the scan simulator of the PCB Lab engine.
// A scan is started from a camera capture or an uploaded image, stays in the
// scanning state for a configurable delay, and then completes with the result
// of an Analyzer. At most one scan runs at a time.
package scanner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pcblab/internal/apperrors"
	"pcblab/internal/clock"
	"pcblab/internal/config"
	"pcblab/internal/metrics"
	"pcblab/internal/models"
)

// State is the lifecycle state of the simulator
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateComplete State = "complete"
	StateFailed   State = "failed"
)

var (
	ErrScanInProgress   = apperrors.Conflict("a scan is already in progress")
	ErrResultPending    = apperrors.Conflict("a scan result must be reset before starting a new scan")
	ErrNoScanInProgress = apperrors.Conflict("no scan in progress")
	ErrScanCanceled     = eris.New("scan canceled")
)

// Upload describes the image file behind an upload trigger
type Upload struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"sizeBytes"`
}

// Trigger is the user action that starts a scan
type Trigger struct {
	Mode models.ScanMode `json:"mode"`
	File *Upload         `json:"file,omitempty"`
}

// Validate checks the trigger before any state changes
func (t Trigger) Validate() error {
	switch t.Mode {
	case models.ScanModeCapture:
		return nil
	case models.ScanModeUpload:
	default:
		return apperrors.NewValidationError("mode", apperrors.ReasonUnknown, fmt.Sprintf("unknown scan mode %q", t.Mode))
	}

	if t.File == nil || strings.TrimSpace(t.File.Name) == "" {
		return apperrors.NewValidationError("file.name", apperrors.ReasonRequired, "an upload needs a file name")
	}
	if t.File.SizeBytes < 0 {
		return apperrors.NewValidationError("file.sizeBytes", apperrors.ReasonInvalid, "size must not be negative")
	}
	return nil
}

// Analyzer produces the result of a scan once its delay has elapsed
type Analyzer interface {
	Analyze(ctx context.Context, trigger Trigger) (models.ScanResult, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface
type AnalyzerFunc func(ctx context.Context, trigger Trigger) (models.ScanResult, error)

// Analyze calls f
func (f AnalyzerFunc) Analyze(ctx context.Context, trigger Trigger) (models.ScanResult, error) {
	return f(ctx, trigger)
}

// DemoAnalyzer returns the fixed demonstration result of the mock analysis
func DemoAnalyzer() Analyzer {
	return AnalyzerFunc(func(context.Context, Trigger) (models.ScanResult, error) {
		return models.ScanResult{
			ComponentsFound:       47,
			FaultsDetected:        2,
			Confidence:            94.7,
			ProcessingTimeSeconds: 2.3,
			PCBType:               "Arduino Uno R3",
			FunctionalBlocks:      []string{"Power Supply", "Microcontroller", "USB Interface", "I/O Pins"},
		}, nil
	})
}

// Status is a snapshot of the simulator
type Status struct {
	ScanID    string             `json:"scanId,omitempty"`
	State     State              `json:"state"`
	Mode      models.ScanMode    `json:"mode,omitempty"`
	StartTime time.Time          `json:"startTime"`
	EndTime   time.Time          `json:"endTime"`
	Result    *models.ScanResult `json:"result,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// Job is a handle on one started scan
type Job struct {
	ID      string
	Trigger Trigger

	done   chan struct{}
	cancel chan struct{}
	result *models.ScanResult
	err    error
}

// Wait blocks until the scan finishes or ctx is done
func (j *Job) Wait(ctx context.Context) (*models.ScanResult, error) {
	select {
	case <-j.done:
		return j.result, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed once the scan has completed, failed or been canceled
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Option configures a Simulator
type Option func(*Simulator)

// WithAnalyzer replaces the demonstration analyzer
func WithAnalyzer(a Analyzer) Option {
	return func(s *Simulator) {
		s.analyzer = a
	}
}

// Simulator runs simulated board scans
type Simulator struct {
	clock    clock.Clock
	analyzer Analyzer
	logger   zerolog.Logger

	captureDelay time.Duration
	uploadDelay  time.Duration

	scanLock sync.Mutex
	state    State
	current  *Job
	stats    Status
}

// New creates a scan simulator in the idle state
func New(cfg *config.Config, clk clock.Clock, opts ...Option) *Simulator {
	s := &Simulator{
		clock:    clk,
		analyzer: DemoAnalyzer(),
		logger:   log.With().Str("component", "scanner").Logger(),
		state:    StateIdle,
		stats:    Status{State: StateIdle},
	}

	delays, err := cfg.GetDelays()
	if err != nil {
		s.logger.Error().Err(err).Msg("Invalid simulator delays in config, using defaults")
		delays, _ = config.New().GetDelays()
	}
	s.captureDelay = delays.Capture
	s.uploadDelay = delays.Upload

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) delayFor(mode models.ScanMode) time.Duration {
	if mode == models.ScanModeUpload {
		return s.uploadDelay
	}
	return s.captureDelay
}

// Start begins a scan. It fails without side effects when the trigger is
// invalid, a scan is running, or a result has not been reset yet.
func (s *Simulator) Start(trigger Trigger) (*Job, error) {
	if err := trigger.Validate(); err != nil {
		metrics.RecordScan(string(trigger.Mode), metrics.OutcomeInvalid, 0)
		return nil, err
	}

	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	switch s.state {
	case StateScanning:
		metrics.RecordScan(string(trigger.Mode), metrics.OutcomeRejected, 0)
		return nil, ErrScanInProgress
	case StateComplete:
		metrics.RecordScan(string(trigger.Mode), metrics.OutcomeRejected, 0)
		return nil, ErrResultPending
	}

	job := &Job{
		ID:      uuid.New().String(),
		Trigger: trigger,
		done:    make(chan struct{}),
		cancel:  make(chan struct{}),
	}

	s.state = StateScanning
	s.current = job
	s.stats = Status{
		ScanID:    job.ID,
		State:     StateScanning,
		Mode:      trigger.Mode,
		StartTime: s.clock.Now(),
	}

	// armed before returning so a fake clock sees the timer immediately
	delay := s.delayFor(trigger.Mode)
	timer := s.clock.After(delay)
	go s.run(job, timer)

	s.logger.Info().
		Str("scanID", job.ID).
		Str("mode", string(trigger.Mode)).
		Dur("delay", delay).
		Msg("Scan started")
	metrics.RecordScan(string(trigger.Mode), metrics.OutcomeStarted, 0)

	return job, nil
}

func (s *Simulator) run(job *Job, timer <-chan time.Time) {
	select {
	case <-timer:
	case <-job.cancel:
		return
	}

	result, err := s.analyze(job.Trigger)

	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	// canceled while the analyzer was running
	if s.current != job {
		return
	}

	now := s.clock.Now()
	duration := now.Sub(s.stats.StartTime)
	mode := string(job.Trigger.Mode)
	s.stats.EndTime = now

	if err != nil {
		s.state = StateFailed
		s.stats.State = StateFailed
		s.stats.Error = err.Error()
		s.logger.Error().Err(err).Str("scanID", job.ID).Msg("Scan failed")
		metrics.RecordScan(mode, metrics.OutcomeFailed, duration)
		s.finish(job, nil, err)
		return
	}

	result.Timestamp = now.Format(time.RFC3339)
	if job.Trigger.Mode == models.ScanModeUpload {
		result.Upload = &models.UploadMetadata{
			FileName:   job.Trigger.File.Name,
			SizeBytes:  job.Trigger.File.SizeBytes,
			UploadedAt: s.stats.StartTime,
		}
	}

	s.state = StateComplete
	s.stats.State = StateComplete
	s.stats.Result = result.Clone()

	s.logger.Info().
		Str("scanID", job.ID).
		Int("components", result.ComponentsFound).
		Int("faults", result.FaultsDetected).
		Dur("duration", duration).
		Msg("Scan completed")
	metrics.RecordScan(mode, metrics.OutcomeCompleted, duration)

	s.finish(job, result.Clone(), nil)
}

// analyze runs the analyzer, turning errors and panics into a simulation failure.
func (s *Simulator) analyze(trigger Trigger) (result models.ScanResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewSimulationFailure("scan", fmt.Errorf("analyzer panic: %v", r))
		}
	}()

	result, err = s.analyzer.Analyze(context.Background(), trigger)
	if err != nil {
		return models.ScanResult{}, apperrors.NewSimulationFailure("scan", err)
	}
	return result, nil
}

// finish must be called with scanLock held
func (s *Simulator) finish(job *Job, result *models.ScanResult, err error) {
	job.result = result
	job.err = err
	close(job.done)
}

// Reset discards a completed or failed scan and returns to idle
func (s *Simulator) Reset() error {
	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	switch s.state {
	case StateScanning:
		return ErrScanInProgress
	case StateIdle:
		return nil
	}

	s.logger.Debug().Str("scanID", s.stats.ScanID).Str("from", string(s.state)).Msg("Scan reset")
	s.state = StateIdle
	s.current = nil
	s.stats = Status{State: StateIdle}
	return nil
}

// Cancel abandons the running scan and returns to idle
func (s *Simulator) Cancel() error {
	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	if s.state != StateScanning {
		return ErrNoScanInProgress
	}

	job := s.current
	close(job.cancel)

	duration := s.clock.Now().Sub(s.stats.StartTime)
	s.logger.Info().Str("scanID", job.ID).Msg("Scan canceled")
	metrics.RecordScan(string(job.Trigger.Mode), metrics.OutcomeCanceled, duration)

	s.state = StateIdle
	s.current = nil
	s.stats = Status{State: StateIdle}
	s.finish(job, nil, ErrScanCanceled)
	return nil
}

// Status returns a snapshot of the simulator
func (s *Simulator) Status() Status {
	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	st := s.stats
	st.Result = st.Result.Clone()
	return st
}

// State returns the current lifecycle state
func (s *Simulator) State() State {
	s.scanLock.Lock()
	defer s.scanLock.Unlock()
	return s.state
}
