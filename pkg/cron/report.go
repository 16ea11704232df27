// Package cron runs the background jobs of the backend: the daily operator
// report and the rate-limiter sweep.
package cron

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"forge3d_backend/internal/model"
	"forge3d_backend/internal/repository"
	"forge3d_backend/pkg/email"
	"forge3d_backend/pkg/ratelimit"
)

type Scheduler struct {
	cron         *cron.Cron
	contacts     repository.ContactRepository
	testimonials repository.TestimonialRepository
	emails       *email.Service
	limiter      *ratelimit.Limiter

	mu         sync.Mutex
	lastReport time.Time
}

func NewScheduler(
	contacts repository.ContactRepository,
	testimonials repository.TestimonialRepository,
	emails *email.Service,
	limiter *ratelimit.Limiter,
) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		contacts:     contacts,
		testimonials: testimonials,
		emails:       emails,
		limiter:      limiter,
	}
}

func (s *Scheduler) Start() error {
	// Daily report at 19:00 local time.
	if _, err := s.cron.AddFunc("0 19 * * *", s.runDailyReport); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 1h", s.limiter.Sweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runDailyReport() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Guard against a double fire around DST changes.
	if time.Since(s.lastReport) < 23*time.Hour {
		log.Println("Daily report already sent today, skipping...")
		return
	}

	ctx := context.Background()

	stats, err := s.contacts.Stats(ctx)
	if err != nil {
		log.Printf("Error fetching contact stats for daily report: %v", err)
		return
	}

	if stats.Today == 0 {
		log.Println("No new contact requests today, skipping daily report")
		return
	}

	var pending int64
	counts, err := s.testimonials.CountByStatus(ctx)
	if err != nil {
		log.Printf("Error fetching testimonial counts for daily report: %v", err)
	} else {
		for _, c := range counts {
			if c.Status == string(model.TestimonialStatusPending) {
				pending = c.Count
			}
		}
	}

	err = s.emails.SendDailyReport(email.DailyReportData{
		Date:                time.Now().Format("02/01/2006"),
		NewContacts:         stats.Today,
		PendingTestimonials: pending,
	})
	if err != nil {
		log.Printf("Error sending daily report: %v", err)
		return
	}

	log.Printf("Daily report sent (%d new contacts)", stats.Today)
	s.lastReport = time.Now()
}
