// Package order provides the Order aggregate owned by a customer.
//
// The package includes:
//   - Order: identity, owning customer, status and free text of an order
//   - Status: the enumerated order status with its wire names
//
// Key business rules:
//   - An order always references the customer that owns it
//   - Only Status and Text can change after creation
//   - Cancel forces the Canceled status from any status, including Canceled itself
//   - Only changed attributes are written back (ChangedFields)
package order
