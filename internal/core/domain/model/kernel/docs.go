// Package kernel provides the domain primitives shared by the user and order models.
//
// The package includes:
//   - UUID: A value object for identifiers with validation and value comparison
//
// Identifiers are compared by value through UUID.IsEqual, never through their
// string or JSON encodings.
package kernel
