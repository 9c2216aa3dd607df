// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightbroker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FreightRepoFactory provides access to the freight repository within a transaction.
	FreightRepoFactory interface {
		FreightRepository() ports.FreightRepository
	}

	// ProposalRepoFactory provides access to the proposal repository within a transaction.
	ProposalRepoFactory interface {
		ProposalRepository() ports.ProposalRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// FreightUoW manages transactions for freight-only operations: freight
	// creation and the batch floor recalculation.
	FreightUoW interface {
		TxManager
		FreightRepoFactory
	}

	// FreightUoWFactory creates new freight unit of work instances.
	FreightUoWFactory interface {
		Create() FreightUoW
	}

	// ProposalUoW manages transactions for proposal submission, which reads
	// the freight and writes the proposal.
	ProposalUoW interface {
		TxManager
		FreightRepoFactory
		ProposalRepoFactory
	}

	// ProposalUoWFactory creates new proposal unit of work instances.
	ProposalUoWFactory interface {
		Create() ProposalUoW
	}

	// AllocationUoW manages the acceptance protocol's transaction, which
	// spans the proposal, the freight's guarded counters, and the new
	// assignment. Everything between Begin and Commit is one atomic
	// allocation: a failed guarded update rolls all of it back.
	AllocationUoW interface {
		TxManager
		FreightRepoFactory
		ProposalRepoFactory
		AssignmentRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// DeliveryUoW manages transactions over the delivery lifecycle:
	// transitions, withdrawal, payment confirmations and their history
	// snapshot merges.
	DeliveryUoW interface {
		TxManager
		FreightRepoFactory
		AssignmentRepoFactory
		HistoryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
