// Package kernel contains the shared value objects of the domain model:
// entity identifiers (UUID) and geographic coordinates (GeoPoint) with the
// great-circle distance metric used for job matching.
//
// All value objects in this package are immutable, validated at construction
// and safe for concurrent use. Zero values are invalid; use the provided
// constructors.
package kernel
