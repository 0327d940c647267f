// Package order provides the Order aggregate of the food delivery system and the
// rules of its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding line items, monetary totals and status
//   - Status: a finite state machine with an explicit transition table
//   - LineItem and Customization: price snapshots captured at checkout
//   - Totals: subtotal, delivery fee, tax, discount and grand total
//   - Number: the human facing order number ("FD" + unix millis + 5 chars)
//   - Analytics: a reduction over a set of orders
//   - Event: notification payloads published when an order changes
//
// Key business rules:
//   - total = subtotal + deliveryFee + tax - discount and is never recomputed
//   - tax is 10% of the subtotal rounded half away from zero to cents
//   - unit prices on line items never change after creation
//   - status moves pending -> confirmed -> preparing -> ready -> out_for_delivery -> delivered,
//     and any state up to ready may move to cancelled
//   - Cancel forces cancelled from any state and records the reason in notes
//   - entering delivered stamps the actual delivery time
package order
