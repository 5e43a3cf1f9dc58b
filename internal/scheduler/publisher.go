// Package scheduler runs the delayed-publish job. Articles saved with a
// future scheduledAt stay hidden until the cron tick flips them live.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"sportshub-backend/internal/domains/article"
	"sportshub-backend/pkg/logger"
)

// Publisher owns the cron instance. One job: publish due articles.
type Publisher struct {
	cron *cron.Cron
	repo article.Repository
}

// NewPublisher builds the publisher around the article repository.
func NewPublisher(repo article.Repository) *Publisher {
	return &Publisher{
		cron: cron.New(),
		repo: repo,
	}
}

// Start registers the job and launches the cron loop. Runs every minute;
// scheduledAt has minute granularity anyway.
func (p *Publisher) Start() error {
	_, err := p.cron.AddFunc("* * * * *", p.publishDue)
	if err != nil {
		return err
	}

	p.cron.Start()
	logger.Info("scheduled publisher started", map[string]interface{}{
		"interval": "1m",
	})
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (p *Publisher) Stop() {
	ctx := p.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		logger.Warn("scheduled publisher stop timed out", nil)
	}
}

func (p *Publisher) publishDue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := p.repo.PublishDue(ctx)
	if err != nil {
		logger.Error("publish due articles", err)
		return
	}
	if n > 0 {
		logger.Info("scheduled articles published", map[string]interface{}{
			"count": n,
		})
	}
}
