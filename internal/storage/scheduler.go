package storage

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
	"github.com/km1000101/the-Editors-hub/internal/storage/interfaces"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// NewsRefresher pulls fresh articles into the store. Implemented by the
// news service; nil disables the refresh job.
type NewsRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler owns the periodic jobs: a safety flush of the state snapshot
// and the news refresh. It also wires the on-change persistence mirror at
// restore time and writes the final snapshot on shutdown.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	store     services.StoreServiceInterface
	manager   *StateManager
	refresher NewsRefresher
	metrics   providers.MetricsProviderInterface
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, store services.StoreServiceInterface, manager *StateManager, refresher NewsRefresher, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		store:     store,
		manager:   manager,
		refresher: refresher,
		metrics:   metrics,
	}
}

// mirror writes the snapshot and records how long the write took.
func (s *Scheduler) mirror(state *models.AppState) error {
	start := time.Now()
	err := s.manager.Mirror(state)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return err
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.mirror(s.store.State()); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted state snapshot to %s", s.config.Persistence.Dir)
	})

	if s.refresher != nil && s.config.News.RefreshInterval > 0 {
		s.cron.AddFunc(gron.Every(s.config.News.RefreshInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			s.logger.Infof(providers.TypeApp, "Refreshing news articles...")
			if err := s.refresher.Refresh(ctx); err != nil {
				s.logger.Errorf(providers.TypeApp, "News refresh failed: %s", err)
				return
			}
			s.logger.Infof(providers.TypeApp, "News articles refreshed")
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the persisted slices into the store and installs the
// on-change mirror, so every later dispatch is written straight back.
func (s *Scheduler) Restore() error {
	s.store.Replace(s.manager.Restore())

	s.store.Subscribe(func(state *models.AppState) {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		if err := s.mirror(state); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error mirroring state change: %s", err)
		}
	})
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting state to storage...")
	if err := s.mirror(s.store.State()); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
		return err
	}
	return nil
}
