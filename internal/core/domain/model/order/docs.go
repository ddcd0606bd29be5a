// Package order provides the order aggregate for the café: the Order root,
// its exclusively-owned line Items, and the Status lifecycle.
//
// Key business rules:
//   - An order holds at least one line item and never two items for the same
//     coffee; duplicates are rejected, not merged
//   - Each item snapshots the coffee's price at validation time; the order
//     total is always the sum of those snapshots
//   - Content (items, customer) can only change while the order is Pending
//   - Status changes are permissive: any valid status can be set from any
//     other, and re-setting the current status is idempotent
//
// Catalog and registry lookups are external collaborators; this package only
// ever sees coffee and customer identifiers plus the price snapshots handed
// to it by the item validator.
package order
