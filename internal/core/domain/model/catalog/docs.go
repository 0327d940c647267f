// Package catalog holds the restaurants and menu items customers order from.
//
// Orders read the catalog at checkout only: a menu item's price and customization
// deltas, and a restaurant's delivery fee and delivery window, are copied onto the
// order and never looked up again.
package catalog
