// Package models defines the core domain models for shuttlecash.
//
// # Models
//
//   - Player: a club player from the roster, member or guest
//   - UsageSession: one game's shuttlecock consumption, shared by its players
//   - PricingConfig: the tunable prices used to bill a day of play
//   - PaymentRecord: the ledger entry for one player on one date
//   - Settlement: the computed bill and payment status for one player on one date
//   - User: an administrator who can log in and record payments
//
// # Money and quantities
//
// All currency values are whole Rupiah held in int64. A player's share of a
// session is kept as an exact *big.Rat so splitting 3 shuttlecocks between 2
// players and summing the day never drifts; only the final cost is rounded.
//
// # Relationships
//
// Models reference each other by ID strings rather than pointers. Settlements
// are never stored; they are recomputed from sessions, pricing and payments.
package models
