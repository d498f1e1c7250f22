// Package wallet contains the Wallet aggregate and its append-only ledger.
//
// Every balance movement produces exactly one Transaction entry; the
// repository persists the new balance and the entry in a single database
// transaction, with a compare-and-swap on the previous balance so concurrent
// writers cannot interleave a lost update. Gateway top-ups use the
// transaction reference as an idempotency key.
package wallet
