// Package coffee provides the catalog entity for products the café sells.
// A Coffee carries a unique name, a positive price, and an image URL.
// Catalog-level rules (name uniqueness, pagination) live in the repository
// and use case layers; this package owns the per-entity invariants.
package coffee
