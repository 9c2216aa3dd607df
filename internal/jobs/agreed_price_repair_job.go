package jobs

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgreedPriceRepairJob hunts down assignments whose stored agreed price
// drifted from the originating proposal's full per-truck price and rewrites
// them. Runs hourly.
type AgreedPriceRepairJob struct {
	handler commands.RepairAgreedPricesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAgreedPriceRepairJob creates a new job for agreed price repair.
func NewAgreedPriceRepairJob(
	handler commands.RepairAgreedPricesCommandHandler,
	logger *slog.Logger,
) *AgreedPriceRepairJob {
	return &AgreedPriceRepairJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "agreed_price_repair_job"),
	}
}

// Start begins the repair job on its hourly schedule.
func (j *AgreedPriceRepairJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRepairAgreedPricesCommand()

		repaired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Agreed price repair failed", "error", err)
			return
		}
		if repaired > 0 {
			j.logger.WarnContext(ctx, "Agreed prices repaired", "repaired", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agreed price repair job started (hourly)")
	return nil
}

// Stop stops the repair job.
func (j *AgreedPriceRepairJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agreed price repair job stopped")
}
