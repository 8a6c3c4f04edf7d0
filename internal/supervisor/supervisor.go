// Package supervisor implements the top-level run loop (spec.md §4.5):
// load configuration, optionally wait for the target device to appear,
// grab it, construct the virtual sink, and drive the engine until
// shutdown or unrecoverable failure.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sudesh955/evremap/internal/config"
	"github.com/sudesh955/evremap/internal/device"
	"github.com/sudesh955/evremap/internal/engine"
	"github.com/sudesh955/evremap/internal/mapping"
	"github.com/sudesh955/evremap/internal/sink"
)

// Options controls device selection and resilience behavior, one field
// per `remap` CLI flag (spec.md §6).
type Options struct {
	Path          string
	DeviceName    string
	Phys          string
	Delay         time.Duration
	WaitForDevice bool
}

const (
	backoffStart = 1 * time.Second
	backoffCap   = 10 * time.Second
)

// Run loads cfg, acquires the device according to opts, and drives the
// engine until ctx is cancelled or a non-recoverable error occurs.
func Run(ctx context.Context, cfgPath string, opts Options, log zerolog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	table := cfg.Mappings()

	path, name, phys := opts.Path, opts.DeviceName, opts.Phys
	if path == "" {
		path = cfg.Path
	}
	if name == "" {
		name = cfg.DeviceName
	}
	if phys == "" {
		phys = cfg.Phys
	}

	for {
		info, err := waitForDevice(ctx, path, name, phys, opts.WaitForDevice, log)
		if err != nil {
			return err
		}

		log.Info().Str("path", info.Path).Str("name", info.Name).Msg("found target device")
		if opts.Delay > 0 {
			log.Info().Dur("delay", opts.Delay).Msg("waiting for keys to settle before grabbing device")
			if err := sleepCtx(ctx, opts.Delay); err != nil {
				return err
			}
		}

		runErr := runOnce(ctx, info.Path, table, log)
		if runErr == nil {
			return nil // context cancelled, clean shutdown
		}
		if !errors.Is(runErr, engine.ErrDeviceLost) {
			return runErr
		}
		if !opts.WaitForDevice {
			return fmt.Errorf("device disconnected: %w", runErr)
		}
		log.Warn().Msg("device disconnected, waiting for it to reappear")
	}
}

// sinkDeviceName is the product name exposed by the synthetic uinput
// keyboard, matching what the Rust original and the teacher both use:
// a fixed, recognizable name rather than echoing the grabbed device's.
const sinkDeviceName = "evremap Virtual Keyboard"

// runOnce grabs the device, builds the sink, and drives the engine to
// completion. It returns engine.ErrDeviceLost on EOF so Run can decide
// whether to loop, and nil if ctx was cancelled mid-run.
func runOnce(ctx context.Context, path string, table *mapping.Table, log zerolog.Logger) error {
	src, err := device.Open(path)
	if err != nil {
		return fmt.Errorf("opening device %s: %w", path, err)
	}
	defer src.Close()
	log.Info().Str("path", src.Path()).Str("name", src.Name()).Msg("grabbed device")

	out, err := sink.New(sinkDeviceName, table.Capabilities(), log)
	if err != nil {
		return fmt.Errorf("creating virtual keyboard: %w", err)
	}
	defer out.Close()

	eng := engine.New(table, src, out, log)

	done := make(chan error, 1)
	go func() { done <- eng.Run() }()

	select {
	case <-ctx.Done():
		// Unblock the Run goroutine's blocking read before touching
		// engine state from this goroutine: Engine is not safe for
		// concurrent use (spec.md §4.4, "single-threaded"), so Shutdown
		// must wait for Run to actually return first.
		src.Close()
		<-done
		if err := eng.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error releasing keys during shutdown")
		}
		return nil
	case err := <-done:
		return err
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitForDevice(ctx context.Context, path, name, phys string, wait bool, log zerolog.Logger) (device.Info, error) {
	backoff := backoffStart
	for {
		info, err := device.Find(path, name, phys)
		if err == nil {
			return info, nil
		}
		if !wait {
			return device.Info{}, fmt.Errorf("device not found: %w", err)
		}

		log.Warn().Err(err).Dur("retry_in", backoff).Msg("device not found, retrying")
		if err := sleepCtx(ctx, backoff); err != nil {
			return device.Info{}, err
		}
		backoff += backoffStart
		if backoff > backoffCap {
			backoff = backoffCap
		}
	}
}
