package services

import (
	"context"
	"log"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// MaintenanceService runs scheduled housekeeping: closing expired donation
// campaigns, completing ended activities and pruning expired refresh tokens.
type MaintenanceService struct {
	activityRepo *repositories.ActivityRepository
	donationRepo *repositories.DonationRepository
	tokenRepo    *repositories.RefreshTokenRepository
	cron         *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	activityRepo *repositories.ActivityRepository,
	donationRepo *repositories.DonationRepository,
	tokenRepo *repositories.RefreshTokenRepository,
) *MaintenanceService {
	return &MaintenanceService{
		activityRepo: activityRepo,
		donationRepo: donationRepo,
		tokenRepo:    tokenRepo,
		cron:         cron.New(),
	}
}

// Start schedules the hourly maintenance run
func (s *MaintenanceService) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.Run(ctx)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Println("✅ Maintenance scheduler started (hourly)")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *MaintenanceService) Stop() {
	<-s.cron.Stop().Done()
}

// Run executes one maintenance pass
func (s *MaintenanceService) Run(ctx context.Context) {
	now := time.Now()
	metrics.MaintenanceRuns.Inc()

	if n, err := s.donationRepo.CloseExpired(ctx, now); err != nil {
		log.Printf("❌ Maintenance: closing expired campaigns: %v", err)
	} else if n > 0 {
		log.Printf("🧹 Maintenance: closed %d expired campaigns", n)
	}

	if n, err := s.activityRepo.CompleteEnded(ctx, now); err != nil {
		log.Printf("❌ Maintenance: completing ended activities: %v", err)
	} else if n > 0 {
		log.Printf("🧹 Maintenance: completed %d ended activities", n)
	}

	if n, err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Maintenance: pruning refresh tokens: %v", err)
	} else if n > 0 {
		log.Printf("🧹 Maintenance: pruned %d expired refresh tokens", n)
	}
}
