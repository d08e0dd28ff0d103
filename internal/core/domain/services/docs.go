// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the supply-chain workflow. It implements
// rules that span aggregates and don't naturally belong to a single one.
//
// The package includes:
//   - AccessGuard: a domain service deciding whether an actor may act on an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
