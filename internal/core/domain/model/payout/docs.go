// Package payout contains the payout Request aggregate.
//
// Earners (vendors and riders) withdraw settled earnings by raising a
// request against their available balance; an administrator later marks it
// processed or rejected. Process is the single mutator and a request is
// terminal once decided.
package payout
