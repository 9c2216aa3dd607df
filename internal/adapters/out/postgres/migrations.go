package postgres

import (
	"freightbroker/internal/adapters/out/postgres/assignmentrepo"
	"freightbroker/internal/adapters/out/postgres/freightrepo"
	"freightbroker/internal/adapters/out/postgres/historyrepo"
	"freightbroker/internal/adapters/out/postgres/proposalrepo"
	"freightbroker/internal/adapters/out/postgres/ratetablerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate and
// installs the constraints GORM tags cannot express.
//
// The partial unique index on (freight_id, carrier_id) over non-cancelled
// assignments is the storage-level backstop of the one-active-assignment
// rule: a carrier may hold at most one live assignment per freight, but may
// return after withdrawing.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&freightrepo.FreightDTO{},
		&proposalrepo.ProposalDTO{},
		&assignmentrepo.AssignmentDTO{},
		&historyrepo.SnapshotDTO{},
		&ratetablerepo.RateRowDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_active_carrier
		ON assignments (freight_id, carrier_id)
		WHERE status <> 'CANCELLED'
	`).Error
}
