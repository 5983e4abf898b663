package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Dependency is anything the application starts, watches and eventually stops.
type Dependency interface {
	// Start brings the dependency up. Long-running dependencies block inside
	// Start until shutdown; short ones return immediately.
	Start() error
	// Stop tears the dependency down.
	Stop() error
	// Name identifies the dependency in logs.
	Name() string
}

type App struct {
	serviceName string
	deps        []Dependency
	// depFailChan receives the first failure from any dependency's Start.
	depFailChan chan error
	// osSignalChan receives the interrupt that begins shutdown.
	osSignalChan chan os.Signal
	// runCalled and stopCalled make Run and stop single-shot.
	runCalled   *atomic.Bool
	stopCalled  *atomic.Bool
	stopTimeout time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout == 0 {
		errs = append(errs, errors.New("stop timeout is required"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided dependencies.
func CreateApp(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName:  cfg.ServiceName,
		deps:         deps,
		stopTimeout:  cfg.StopTimeout,
		runCalled:    &atomic.Bool{},
		stopCalled:   &atomic.Bool{},
		depFailChan:  make(chan error, len(deps)),
		osSignalChan: make(chan os.Signal, 1),
	}, nil
}

// Run starts every dependency and blocks until a dependency fails, the
// context is cancelled or the OS asks the process to stop, then performs a
// bounded graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, dep := range a.deps {
		// Each dependency runs in its own goroutine: a blocking Start keeps
		// running until shutdown, and any panic or error lands on the failure
		// channel instead of taking the process down.
		go func(dep Dependency) {
			defer func() {
				if r := recover(); r != nil {
					a.depFailChan <- fmt.Errorf("panic in Start() for dependency %s: %v", dep.Name(), r)
				}
			}()

			log.Info().Msg("Starting dependency: " + dep.Name())
			if err := dep.Start(); err != nil {
				a.depFailChan <- fmt.Errorf("failure in Start() for dependency %s: %v", dep.Name(), err)
			}
		}(dep)
	}

	signal.Notify(a.osSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.osSignalChan)

	select {
	case <-runCtx.Done():
		log.Info().Msg("App context cancelled: shutting down")
	case depErr := <-a.depFailChan:
		log.Error().Msg("Dependency failed: " + depErr.Error())
	case sig := <-a.osSignalChan:
		log.Info().Msg("OS signal received: " + sig.String() + ", shutdown beginning")
	}

	if err := a.stop(); err != nil {
		log.Error().Msg("Error stopping application: " + err.Error())
		return err
	}
	return nil
}

// stop shuts every dependency down, giving the whole pass stopTimeout before
// abandoning it.
func (a *App) stop() error {
	if !a.stopCalled.CompareAndSwap(false, true) {
		return errors.New("stop has already been called")
	}

	var errs []error
	done := make(chan struct{})

	go func() {
		defer close(done)
		for _, dep := range a.deps {
			log.Info().Msg("Stopping dependency: " + dep.Name())
			if err := dep.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("failure in Stop() for dependency %s: %v", dep.Name(), err))
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(a.stopTimeout):
		errs = append(errs, fmt.Errorf("shutdown timed out after %s", a.stopTimeout))
	}

	return errors.Join(errs...)
}
