// Package model defines shared data types used across the dashboard service.
//
// Conventions:
//   - Prices, caps and volumes: float64 USD, as delivered by the provider
//   - Nullable provider fields: pointer types (nil means "unknown", which
//     renders differently from zero)
//   - IDs: provider-assigned string slugs (e.g., "bitcoin")
package model
