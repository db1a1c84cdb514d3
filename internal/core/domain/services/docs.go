// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ItemValidator: A domain service that runs the packing validation pipeline for scanned units
//   - Numbering: Business number generation for shipments and cartons
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
