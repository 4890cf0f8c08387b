// Package user provides the User aggregate behind customer accounts.
//
// Key business rules:
//   - Users change their own name and email only; the password hash and the
//     orders relationship are never written through this aggregate
//   - Deleting an account is a soft delete: Deactivate flips Active to false
//   - Emails are stored trimmed and lower-cased
package user
