// Package kernel provides core domain primitives shared by the catalog, user and
// order models of the food delivery service.
//
// The package includes:
//   - UUID: A value object for entity identifiers with validation and comparison
//   - GeoPoint: A latitude/longitude pair used in delivery addresses
//   - Money helpers: validation and cent rounding on top of shopspring/decimal
//
// These primitives are immutable and safe for concurrent use.
package kernel
