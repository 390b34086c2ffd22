// Package models defines the core domain models for the expense ledger.
//
// # Models
//
//   - Participant: a person who can be charged a share of an expense
//   - Item: a purchasable good with a unit price
//   - ExpenseRecord: one participant's share of one expense group
//   - State: the aggregate root holding every entity above plus app settings
//
// # Design Principles
//
// 1. **One aggregate**: State is the unit of persistence and of mutation.
// 2. **Snapshots, not joins**: ExpenseRecord copies the participant's name at
// creation time, so deleting a participant never rewrites history.
// 3. **ID strings, not pointers**: relationships are expressed as opaque ids.
//
// The JSON shape of State is the persisted format. Absent containers decode to
// empty slices and the older "employees" key is read as participants.
package models
