// Package freight contains the Freight aggregate: a shipment request that
// may require a single truck or a fleet, its pricing tuple, the regulatory
// rate-table keys, and the ranked effective-status enumeration.
//
// The aggregate guards its creation invariants but leaves every mutation of
// the contended (acceptedTrucks, driverID) pair to predicate-guarded
// repository updates, keeping the capacity invariant race-free.
package freight
