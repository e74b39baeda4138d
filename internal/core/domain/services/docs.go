// Package services holds the domain logic that spans aggregates.
//
// The package includes:
//   - PricingCalculator: a pure function from priced cart lines and a shop's delivery
//     policy to a Bill. It knows nothing about minimum order amounts.
//   - Checkout: validates a submitted cart against the shop and its live menu, snapshots
//     names and prices into order lines, prices them and applies the minimum-order
//     admission check.
//
// Both are stateless and safe to share.
package services
