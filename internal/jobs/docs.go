// Package jobs provides scheduled background tasks for the freight engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the allocation protocol depends on.
//
// # Available Jobs
//
// 1. PriceFloorRecalculationJob - Runs every ten minutes to recompute the
// regulatory price floor of every open freight against the loaded rate table.
// 2. AgreedPriceRepairJob - Runs hourly to find assignments whose stored
// agreed price drifted from the originating proposal's price and rewrite them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recalculateHandler, repairHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and wait for the next tick; a failed run never
// leaves partial state because each handler runs inside one transaction.
package jobs
