package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/config"
)

// Scheduler drives the analyzer on a fixed cadence and runs periodic
// recovery of interrupted analyses between runs
type Scheduler struct {
	analyzer *Analyzer
	schedule config.ScheduleConfig
	analysis config.AnalysisConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler over an analyzer
func NewScheduler(analyzer *Analyzer, schedule config.ScheduleConfig, analysis config.AnalysisConfig) *Scheduler {
	return &Scheduler{analyzer: analyzer, schedule: schedule, analysis: analysis}
}

// Start launches the run and recovery loops. A recovery pass executes
// immediately so records orphaned by a previous crash are reset before the
// first run.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.recover(ctx)

	s.wg.Add(2)
	go s.runLoop(ctx)
	go s.recoveryLoop(ctx)
	lgr.Printf("[INFO] scheduler started, run every %v, recovery every %v", s.schedule.RunInterval, s.schedule.RecoveryInterval)
}

// Stop halts both loops and waits for in-flight passes to finish
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.schedule.RunInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.analyzer.Run(ctx); err != nil {
				lgr.Printf("[ERROR] scheduled analysis run failed: %v", err)
			}
		}
	}
}

func (s *Scheduler) recoveryLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.schedule.RecoveryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.recover(ctx)
		}
	}
}

func (s *Scheduler) recover(ctx context.Context) {
	res, err := s.analyzer.RecoverInterrupted(ctx, s.schedule.RecoveryTimeout, s.schedule.MaxRecoveries)
	if err != nil {
		lgr.Printf("[ERROR] recovery pass failed: %v", err)
		return
	}
	if res.Detected > 0 {
		lgr.Printf("[INFO] recovery pass: %d interrupted detected, %d recovered, %d failed",
			res.Detected, res.Recovered, res.Failed)
	}
}
