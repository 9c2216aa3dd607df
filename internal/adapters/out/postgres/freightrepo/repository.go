package freightrepo

import (
	"context"
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFreightRepository implements FreightRepository using GORM.
//
// The accepted-truck counter and the driver link are mutated exclusively by
// the guarded methods. Each issues a single conditional UPDATE and treats an
// unmatched predicate as a conflict, so two concurrent acceptances of the
// last slot resolve to exactly one winner inside the database, independent of
// what either transaction read beforehand.
type GormFreightRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFreightRepository creates a new GORM freight repository.
func NewGormFreightRepository(db *gorm.DB, tracker aggregateTracker) *GormFreightRepository {
	return &GormFreightRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new freight to the database.
func (r *GormFreightRepository) Add(ctx context.Context, aggregate *freight.Freight) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the uncontended columns of an existing freight. The counter
// and the driver link are deliberately excluded; they belong to the guarded
// methods.
func (r *GormFreightRepository) Update(ctx context.Context, aggregate *freight.Freight) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FreightDTO{}).
		Where("id = ?", dto.ID).
		Omit("accepted_trucks", "driver_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a freight by ID.
func (r *GormFreightRepository) Get(ctx context.Context, id kernel.UUID) (*freight.Freight, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FreightDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("freight", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves every freight still seeking capacity.
func (r *GormFreightRepository) GetAllOpen(ctx context.Context) ([]*freight.Freight, error) {
	var dtos []FreightDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND accepted_trucks < required_trucks", freight.Open.String()).Error
	if err != nil {
		return nil, err
	}

	freights := make([]*freight.Freight, 0, len(dtos))
	for _, dto := range dtos {
		f, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		freights = append(freights, f)
	}

	return freights, nil
}

// ReserveSlot atomically claims one slot and returns the post-update counter.
// The predicate re-checks capacity inside the UPDATE, so the check the
// handler did on its stale read is only an early exit, never the authority.
// The RETURNING value is the only counter the caller may trust for reporting
// remaining capacity.
func (r *GormFreightRepository) ReserveSlot(ctx context.Context, id kernel.UUID) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var accepted int
	result := r.db.WithContext(ctx).Raw(`
		UPDATE freights
		SET accepted_trucks = accepted_trucks + 1
		WHERE id = ? AND accepted_trucks < required_trucks
		RETURNING accepted_trucks
	`, id.Bytes()).Scan(&accepted)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, errs.NewConflictError("freight capacity", id.String())
	}
	return accepted, nil
}

// ReleaseSlot atomically returns one slot after a withdrawal.
func (r *GormFreightRepository) ReleaseSlot(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE freights
		SET accepted_trucks = accepted_trucks - 1
		WHERE id = ? AND accepted_trucks > 0
	`, id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("freight capacity", id.String())
	}
	return nil
}

// BindDriver atomically links the carrier to a single-truck freight. The
// null-guard makes the link transition null to set exactly once.
func (r *GormFreightRepository) BindDriver(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE freights
		SET driver_id = ?
		WHERE id = ? AND required_trucks = 1 AND driver_id IS NULL
	`, driverID.Bytes(), id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("freight driver", id.String())
	}
	return nil
}

// ClearDriver removes the carrier link on withdrawal. Guarded by ownership so
// a stale withdrawal cannot unbind a newer carrier.
func (r *GormFreightRepository) ClearDriver(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE freights
		SET driver_id = NULL
		WHERE id = ? AND driver_id = ?
	`, id.Bytes(), driverID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("freight driver", id.String())
	}
	return nil
}

// UpdateStatus sets the freight's own status column.
func (r *GormFreightRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status freight.Status) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&FreightDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("freight", id.String())
	}
	return nil
}

// UpdateMinimumFloor stores a recalculated per-truck floor. A nil floor marks
// the freight as not floor-enforceable.
func (r *GormFreightRepository) UpdateMinimumFloor(ctx context.Context, id kernel.UUID, floor *kernel.Money) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&FreightDTO{}).
		Where("id = ?", id.Bytes()).
		Update("minimum_floor_cents", moneyCents(floor))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("freight", id.String())
	}
	return nil
}
