// Package services contains domain services: business logic that spans the
// order aggregate and the external catalog without belonging to either.
// OrderItemValidator validates requested order lines against the catalog and
// the per-order duplicate-coffee rule, snapshotting prices into line items.
package services
