// Package services provides domain services that implement business rules
// spanning multiple aggregates of the freight brokering engine.
//
// The package includes:
//   - FloorCalculator: computes the per-truck regulatory minimum price from
//     the rate table, with a general-cargo fallback
//   - PriceResolver: resolves the displayable price and the role-gated cost
//     breakdown from a freight's pricing tuple
//   - StatusAggregator: derives one effective status for a freight from its
//     assignments' individual statuses
//
// Domain services coordinate between aggregates, implementing business logic
// that does not naturally belong to a single aggregate root.
package services
