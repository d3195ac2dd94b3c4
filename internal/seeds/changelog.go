package seeds

import (
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// SeedChangelog inserts the starter release notes, skipping versions that
// already exist.
func SeedChangelog(db *gorm.DB) error {
	entries := []models.ChangelogEntry{
		{
			Title: "Major Economy Update",
			Content: `# Version 2.5.0 - Major Economy Update

## New Features
- **Dynamic Market System**: Prices now fluctuate based on supply and demand
- **Business Partnerships**: Players can now form business alliances
- **Investment System**: Invest in stocks and properties for passive income
- **Cryptocurrency Trading**: New digital currency system implemented

## Improvements
- Optimized server performance by 35%
- Enhanced anti-cheat detection systems
- Improved faction management interface
- Better mobile device compatibility

## Bug Fixes
- Fixed vehicle spawning issues in certain areas
- Resolved property ownership transfer bugs
- Fixed faction rank display problems
- Corrected salary calculation errors

## Balance Changes
- Reduced weapon prices by 15%
- Increased property maintenance costs
- Adjusted faction payouts for better balance
- Modified drug dealing profit margins`,
			Version:     "2.5.0",
			ReleaseDate: "2024-01-15",
			IsPublished: true,
		},
		{
			Title: "Holiday Event & Security Updates",
			Content: `# Version 2.4.8 - Holiday Event & Security Updates

## Holiday Event
- **Winter Festival**: Special holiday decorations across the city
- **Gift System**: Daily login rewards throughout December
- **Snow Weather**: Realistic winter weather effects
- **Holiday Vehicles**: Special themed vehicles available

## Security Enhancements
- Implemented advanced DDoS protection
- Enhanced player data encryption
- Improved ban evasion detection
- Strengthened account security measures

## Quality of Life
- Added quick travel system for VIP members
- Improved chat system with better filtering
- Enhanced character creation interface
- Added more customization options

## Bug Fixes
- Fixed rare server crash issues
- Resolved login queue problems
- Fixed vehicle modification glitches
- Corrected time synchronization issues`,
			Version:     "2.4.8",
			ReleaseDate: "2023-12-01",
			IsPublished: true,
		},
		{
			Title: "Faction System Overhaul",
			Content: `# Version 2.4.0 - Faction System Overhaul

## Major Changes
- **New Faction Types**: Added Medical, Legal, and Media factions
- **Faction Headquarters**: Customizable faction bases with unique features
- **Rank System**: Redesigned promotion and demotion mechanics
- **Faction Wars**: Structured conflict system with objectives

## New Features
- Faction-specific vehicles and equipment
- Internal faction communication systems
- Faction treasury and budget management
- Achievement system for faction activities

## Improvements
- Better faction member tracking
- Enhanced faction statistics
- Improved faction application process
- Streamlined faction management tools

## Bug Fixes
- Fixed faction invite system bugs
- Resolved faction chat display issues
- Corrected faction vehicle access problems
- Fixed faction rank permission glitches`,
			Version:     "2.4.0",
			ReleaseDate: "2023-10-20",
			IsPublished: true,
		},
	}

	for _, entry := range entries {
		var existing models.ChangelogEntry
		if err := db.Where("version = ?", entry.Version).First(&existing).Error; err == nil {
			logger.Info().Str("version", entry.Version).Msg("Changelog entry already exists, skipping")
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
		logger.Info().Str("version", entry.Version).Msg("Changelog entry seeded")
	}

	return nil
}
