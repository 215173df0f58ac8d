// Package seed loads the static platform reference data at startup.
package seed

import (
	"context"
	"fmt"

	"presence/internal/domain/platform"
	"presence/internal/shared/logger"
)

// defaultPlatformNames is the fixed, ordered platform list. plids are
// assigned sequentially from 101, zero-padded to four digits.
var defaultPlatformNames = []string{
	"Facebook",
	"Instagram",
	"LinkedIn",
	"Pinterest",
	"TikTok",
	"Twitter",
	"YouTube",
	"Other",
	"I don't know",
}

// DefaultPlatforms returns the platform list with assigned plids.
func DefaultPlatforms() []platform.Platform {
	platforms := make([]platform.Platform, 0, len(defaultPlatformNames))
	for i, name := range defaultPlatformNames {
		platforms = append(platforms, platform.Platform{
			PLID: fmt.Sprintf("%04d", 101+i),
			Name: name,
		})
	}
	return platforms
}

// Platforms seeds the platform reference table. Relies on the repository's
// insert-ignore semantics, so running it on every startup is safe.
func Platforms(ctx context.Context, repo platform.Repository, log logger.Interface) error {
	if err := repo.Seed(ctx, DefaultPlatforms()); err != nil {
		return fmt.Errorf("failed to seed platform reference data: %w", err)
	}

	log.Infow("platform reference data seeded", "platforms", len(defaultPlatformNames))
	return nil
}
