package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Runner выполняет один проход обнаружения
type Runner interface {
	RunPass(ctx context.Context, now time.Time) (*models.PassResult, error)
}

// Scheduler запускает проход сразу после старта и затем на каждом тике интервала.
// Проход, начатый до Stop, доводится до конца.
type Scheduler struct {
	runner   Runner
	clock    clockwork.Clock
	interval time.Duration
	logger   *logrus.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	loop   chan struct{}
	passes sync.WaitGroup
}

func New(runner Runner, clock clockwork.Clock, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает цикл планировщика. Повторный вызов без Stop возвращает ошибку.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("scheduler: interval must be positive, got %s", s.interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return errors.New("scheduler: already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.loop = make(chan struct{})

	s.logger.WithFields(logrus.Fields{
		"service":  "scheduler",
		"interval": s.interval.String(),
	}).Info("Detection scheduler started")

	go s.run(ctx, s.loop)
	return nil
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.trigger(ctx)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			// тик и отмена могут прийти одновременно, select выбирает случайно
			if ctx.Err() != nil {
				return
			}
			s.trigger(ctx)
		}
	}
}

// trigger запускает проход в отдельной горутине, чтобы долгий проход не сдвигал тики.
// Пересечение проходов отсекает сам движок (ErrPassInProgress).
func (s *Scheduler) trigger(ctx context.Context) {
	now := s.clock.Now()
	passCtx := context.WithoutCancel(ctx)

	s.passes.Add(1)
	go func() {
		defer s.passes.Done()

		log := s.logger.WithFields(logrus.Fields{
			"service": "scheduler",
			"now":     now,
		})
		result, err := s.runner.RunPass(passCtx, now)
		switch {
		case errors.Is(err, service.ErrPassInProgress):
			log.Info("Scheduled pass skipped, previous pass still running")
		case err != nil:
			log.WithError(err).Error("Scheduled pass failed")
		default:
			log.WithFields(logrus.Fields{
				"candidates": result.Candidates,
				"reports":    result.ReportsCreated,
				"failed":     result.Failed,
			}).Debug("Scheduled pass finished")
		}
	}()
}

// Stop останавливает тики. Безопасно вызывать несколько раз.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.logger.WithField("service", "scheduler").Info("Detection scheduler stopped")
}

// Wait блокируется до выхода из цикла и завершения всех начатых проходов
func (s *Scheduler) Wait() {
	s.mu.Lock()
	loop := s.loop
	s.mu.Unlock()
	if loop != nil {
		<-loop
	}
	s.passes.Wait()
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
