// Package customer provides the registry entity for people who place orders.
// Email uniqueness is a registry-level rule enforced by the repository; this
// package owns the per-entity invariants (required name and email).
package customer
