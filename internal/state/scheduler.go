package state

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"sentwatch/internal/providers"
	"sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
)

// Scheduler triggers watch cycles on the configured interval. opsMu
// guarantees runs never overlap; profiles inside a run are already
// sequential, so this is the only locking the system needs.
type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	runner interfaces.RunnerInterface
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Watch.Interval), func() {
		s.runCycle()
	})
	s.cron.Start()

	// First cycle fires immediately rather than one interval from now.
	go s.runCycle()
}

func (s *Scheduler) runCycle() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.runner.RunOnce(context.Background()); err != nil {
		s.logger.Errorf(providers.TypeWatch, "Watch run failed: %s", err)
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	// Wait for an in-flight cycle so shutdown never interrupts a write.
	s.opsMu.Lock()
	s.opsMu.Unlock() //nolint:staticcheck
}

func NewScheduler(config *structures.Config, logger providers.Logger, runner interfaces.RunnerInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		runner: runner,
	}
}
