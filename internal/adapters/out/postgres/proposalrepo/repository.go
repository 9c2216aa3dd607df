package proposalrepo

import (
	"context"
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"
	"freightbroker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProposalRepository implements ProposalRepository using GORM.
type GormProposalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProposalRepository creates a new GORM proposal repository.
func NewGormProposalRepository(db *gorm.DB, tracker aggregateTracker) *GormProposalRepository {
	return &GormProposalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new proposal to the database.
func (r *GormProposalRepository) Add(ctx context.Context, aggregate *proposal.Proposal) error {
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

// Update saves a proposal's resolution to the database.
func (r *GormProposalRepository) Update(ctx context.Context, aggregate *proposal.Proposal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProposalDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a proposal by ID.
func (r *GormProposalRepository) Get(ctx context.Context, id kernel.UUID) (*proposal.Proposal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProposalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proposal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByFreight retrieves the unresolved proposals for a freight.
func (r *GormProposalRepository) GetAllPendingByFreight(
	ctx context.Context,
	freightID kernel.UUID,
) ([]*proposal.Proposal, error) {
	if err := freightID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProposalDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "freight_id = ? AND status = ?", freightID.Bytes(), proposal.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	proposals := make([]*proposal.Proposal, 0, len(dtos))
	for _, dto := range dtos {
		p, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		proposals = append(proposals, p)
	}

	return proposals, nil
}
