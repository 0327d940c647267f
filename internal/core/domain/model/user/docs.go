// Package user provides the people an order refers to: the customer who placed it,
// the restaurant owner and the delivery agent carrying it.
package user
