// Package platform holds the static social-media platform reference data.
package platform

import "context"

// Platform is a reference platform. PLID is a 4-digit string identifier
// assigned at seed time ("0101" for the first seeded platform).
type Platform struct {
	PLID string
	Name string
}

// Repository defines lookups against the platform reference table.
type Repository interface {
	// ResolveNames maps platform names to plids. Names without a row are
	// simply absent from the result; the caller decides whether that is an
	// error.
	ResolveNames(ctx context.Context, names []string) (map[string]string, error)

	// GetByPLID retrieves a platform by its plid, (nil, nil) when absent
	GetByPLID(ctx context.Context, plid string) (*Platform, error)

	// Seed inserts the given platforms, ignoring rows whose platform_name
	// already exists. Idempotent across restarts.
	Seed(ctx context.Context, platforms []Platform) error
}
