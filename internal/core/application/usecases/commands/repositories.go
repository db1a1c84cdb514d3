// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"plasmashipping/internal/core/ports"
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

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CartonRepoFactory provides access to the carton repository within a transaction.
	CartonRepoFactory interface {
		CartonRepository() ports.CartonRepository
	}

	// ReportRepoFactory provides access to the unacceptable unit report
	// repository within a transaction.
	ReportRepoFactory interface {
		UnacceptableUnitReportRepository() ports.UnacceptableUnitReportRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify shipment aggregates.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CartonUoW manages transactions spanning carton and shipment aggregates.
	// Carton operations read shipment state for their guards and may advance
	// the shipment lifecycle, so both repositories share one transaction.
	CartonUoW interface {
		TxManager
		CartonRepoFactory
		ShipmentRepoFactory
	}

	// CartonUoWFactory creates new carton unit of work instances.
	CartonUoWFactory interface {
		Create() CartonUoW
	}

	// UoW manages transactions across shipment, carton and report aggregates.
	// Used by the batch revalidation that closes a shipment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   cartonRepo := uow.CartonRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentRepoFactory
		CartonRepoFactory
		ReportRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
