package jobs

import (
	"fmt"
	"log/slog"

	"freightbroker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	priceFloorJob *PriceFloorRecalculationJob
	priceRepair   *AgreedPriceRepairJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	recalculateHandler commands.RecalculatePriceFloorsCommandHandler,
	repairHandler commands.RepairAgreedPricesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		priceFloorJob: NewPriceFloorRecalculationJob(recalculateHandler, logger),
		priceRepair:   NewAgreedPriceRepairJob(repairHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.priceFloorJob.Start(); err != nil {
		return fmt.Errorf("failed to start price floor recalculation job: %w", err)
	}

	if err := jm.priceRepair.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.priceFloorJob.Stop()
		return fmt.Errorf("failed to start agreed price repair job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.priceFloorJob.Stop()
	jm.priceRepair.Stop()
}
