package assignmentrepo

import (
	"context"
	"errors"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/ports"
	"freightbroker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database. A violation of the active
// (freight_id, carrier_id) unique index is reported as a conflict: the
// carrier already holds a live assignment on the freight.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("assignment", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an assignment's status and payment handshake changes.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ActiveExists reports whether the carrier holds a non-cancelled assignment
// on the freight.
func (r *GormAssignmentRepository) ActiveExists(
	ctx context.Context,
	freightID, carrierID kernel.UUID,
) (bool, error) {
	if err := errors.Join(freightID.Validate(), carrierID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("freight_id = ? AND carrier_id = ? AND status <> ?",
			freightID.Bytes(), carrierID.Bytes(), assignment.Cancelled.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetActiveStatusesByFreight returns the statuses of the freight's
// non-cancelled assignments.
func (r *GormAssignmentRepository) GetActiveStatusesByFreight(
	ctx context.Context,
	freightID kernel.UUID,
) ([]assignment.Status, error) {
	if err := freightID.Validate(); err != nil {
		return nil, err
	}

	var raw []string
	err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("freight_id = ? AND status <> ?", freightID.Bytes(), assignment.Cancelled.String()).
		Pluck("status", &raw).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]assignment.Status, 0, len(raw))
	for _, s := range raw {
		status, parseErr := assignment.StatusFromString(s)
		if parseErr != nil {
			return nil, parseErr
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// GetPriceMismatches scans for assignments whose stored agreed price no
// longer equals the price of the proposal that created them.
func (r *GormAssignmentRepository) GetPriceMismatches(ctx context.Context) ([]ports.PriceMismatch, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.agreed_price_cents,
			p.price_cents
		FROM assignments a
		JOIN proposals p ON p.id = a.proposal_id
		WHERE a.agreed_price_cents <> p.price_cents
		ORDER BY a.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mismatches := make([]ports.PriceMismatch, 0)
	for rows.Next() {
		var (
			rawID       uuid.UUID
			agreedCents int64
			propCents   int64
		)
		if err = rows.Scan(&rawID, &agreedCents, &propCents); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		agreed, moneyErr := kernel.NewMoneyFromCents(agreedCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		proposed, moneyErr := kernel.NewMoneyFromCents(propCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		mismatches = append(mismatches, ports.PriceMismatch{
			AssignmentID:  id,
			AgreedPrice:   agreed,
			ProposalPrice: proposed,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mismatches, nil
}

// RepairAgreedPrice rewrites the agreed price to the proposal price and keeps
// the prior value in the audit column.
func (r *GormAssignmentRepository) RepairAgreedPrice(
	ctx context.Context,
	id kernel.UUID,
	price, repairedFrom kernel.Money,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]interface{}{
			"agreed_price_cents":  price.Cents(),
			"repaired_from_cents": repairedFrom.Cents(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", id.String())
	}
	return nil
}
