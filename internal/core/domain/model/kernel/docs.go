// Package kernel holds the shared building blocks of the domain model.
// It currently provides the UUID value object used as the identity type for
// every aggregate and entity in the system.
//
// Kernel types are value objects: immutable, constructor-validated, and safe
// to copy. They carry no behavior specific to any single aggregate.
package kernel
