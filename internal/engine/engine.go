package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/blocks"
	"github.com/Lithos-Systems/petra-plc/internal/errs"
	"github.com/Lithos-Systems/petra-plc/internal/metrics"
	"github.com/Lithos-Systems/petra-plc/internal/signal"
	"github.com/Lithos-Systems/petra-plc/internal/validator"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/Lithos-Systems/petra-plc/internal/engine")

// Engine is the scan engine: a signal bus, an ordered block list executed
// once per scan, and a periodic run/stop loop.
type Engine struct {
	id     uuid.UUID
	config Config
	bus    signal.Bus
	blocks []blocks.Block

	mu        sync.RWMutex
	running   bool
	scanCount atomic.Uint64

	log *logrus.Entry
}

// New constructs an Engine from a parsed Config: the signal bus is seeded
// from config.Signals and blocks are built, in declared order, via
// blocks.New. Construction aborts on the first signal or block error.
func New(cfg Config) (*Engine, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(cfg); err != nil {
		return nil, &errs.ConfigError{Message: err.Error()}
	}

	bus := signal.NewBus()

	id := uuid.New()
	log := logrus.WithField("engine_id", id)

	for _, sc := range cfg.Signals {
		v, err := sc.ToValue()
		if err != nil {
			return nil, err
		}
		bus.Set(sc.Name, v)
		log.WithFields(logrus.Fields{"signal": sc.Name, "type": sc.Type}).Debug("initialized signal")
	}

	built := make([]blocks.Block, 0, len(cfg.Blocks))
	for _, bc := range cfg.Blocks {
		b, err := blocks.New(blocks.Config{
			Name: bc.Name, Type: bc.Type,
			Inputs: bc.Inputs, Outputs: bc.Outputs, Params: bc.Params,
		})
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"block": bc.Name, "type": bc.Type}).Info("created block")
		built = append(built, b)
	}

	e := &Engine{
		id:     id,
		config: cfg,
		bus:    bus,
		blocks: built,
		log:    log,
	}
	return e, nil
}

// FromConfigText parses YAML config text and constructs an Engine from it.
func FromConfigText(text string) (*Engine, error) {
	cfg, err := FromText(text)
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// FromConfigPath reads and parses a YAML config file and constructs an
// Engine from it.
func FromConfigPath(path string) (*Engine, error) {
	cfg, err := FromPath(path)
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// ID returns the engine's instance identifier, attached to its logs,
// traces, and metrics.
func (e *Engine) ID() uuid.UUID { return e.id }

// SignalBus returns the engine's signal bus.
func (e *Engine) SignalBus() signal.Bus { return e.bus }

// ExecuteBlocks runs every block once, in declared order, so external
// callers (tests, debug tools) can drive a scan manually without the
// periodic loop. It aborts on the first block error, leaving the bus as
// whatever the completed blocks left it — there is no scan rollback.
func (e *Engine) ExecuteBlocks() error {
	for _, b := range e.blocks {
		if err := b.Execute(e.bus); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the periodic scan loop at config.ScanTimeMs cadence until ctx
// is cancelled or Stop is called. Each scan is traced as a child span and
// a scan that runs longer than the configured cadence is logged as an
// overrun, but execution continues — an overrun is not fatal.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Infof("starting scan engine with %dms scan time", e.config.ScanTimeMs)
	e.setRunning(true)
	defer e.setRunning(false)

	period := time.Duration(e.config.ScanTimeMs) * time.Millisecond
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Infof("scan engine stopped after %d scans", e.scanCount.Load())
			return nil
		case <-ticker.C:
			if !e.IsRunning() {
				e.log.Infof("scan engine stopped after %d scans", e.scanCount.Load())
				return nil
			}
			e.runOneScan(ctx)
		}
	}
}

func (e *Engine) runOneScan(ctx context.Context) {
	scanNum := e.scanCount.Load() + 1

	spanCtx, span := tracer.Start(ctx, "scan.execute", trace.WithAttributes(
		attribute.Int64("scan.number", int64(scanNum)),
		attribute.Int("scan.block_count", len(e.blocks)),
		attribute.String("engine.id", e.id.String()),
	))
	defer span.End()
	_ = spanCtx

	start := time.Now()
	if err := e.ExecuteBlocks(); err != nil {
		e.log.WithError(err).Error("scan execution failed")
		span.RecordError(err)
	}
	duration := time.Since(start)

	e.scanCount.Add(1)
	metrics.ObserveScan(duration)

	limit := time.Duration(e.config.ScanTimeMs) * time.Millisecond
	if duration > limit {
		e.log.Errorf("scan overrun: %v > %v", duration, limit)
		metrics.IncOverrun()
	} else {
		e.log.Debugf("scan %d completed in %v", scanNum, duration)
	}
}

// Stop signals the run loop to exit after its current tick.
func (e *Engine) Stop() {
	e.log.Info("stopping scan engine...")
	e.setRunning(false)
}

func (e *Engine) setRunning(v bool) {
	e.mu.Lock()
	e.running = v
	e.mu.Unlock()
}

// IsRunning reports whether the scan loop is active.
func (e *Engine) IsRunning() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

// ScanCount returns the number of completed scans.
func (e *Engine) ScanCount() uint64 { return e.scanCount.Load() }

// DumpSignals returns a snapshot of every signal currently on the bus.
func (e *Engine) DumpSignals() []signal.Entry {
	return e.bus.Iter()
}
