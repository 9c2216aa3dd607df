package jobs

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PriceFloorRecalculationJob keeps the stored per-truck floors of open
// freights in sync with the regulatory rate table. Runs every ten minutes;
// freights whose floor is already current are skipped.
type PriceFloorRecalculationJob struct {
	handler commands.RecalculatePriceFloorsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPriceFloorRecalculationJob creates a new job for floor recalculation.
func NewPriceFloorRecalculationJob(
	handler commands.RecalculatePriceFloorsCommandHandler,
	logger *slog.Logger,
) *PriceFloorRecalculationJob {
	return &PriceFloorRecalculationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "price_floor_recalculation_job"),
	}
}

// Start begins the recalculation job on its ten-minute schedule.
func (j *PriceFloorRecalculationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRecalculatePriceFloorsCommand()

		changed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Price floor recalculation failed", "error", err)
			return
		}
		if changed > 0 {
			j.logger.InfoContext(ctx, "Price floors recalculated", "changed", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Price floor recalculation job started (every 10 minutes)")
	return nil
}

// Stop stops the recalculation job.
func (j *PriceFloorRecalculationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Price floor recalculation job stopped")
}
