// Package services provides domain services that work across several aggregates.
//
// The package includes:
//   - CheckoutPricer: turns a cart of catalog items into priced order lines and totals
package services
