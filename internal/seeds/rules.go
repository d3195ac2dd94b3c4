package seeds

import (
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// SeedRules inserts the starter rule set, skipping titles that already
// exist.
func SeedRules(db *gorm.DB) error {
	rules := []models.Rule{
		{
			Title: "General Server Rules",
			Content: `# General Server Rules

## 1. Respect and Conduct
- Treat all players with respect and courtesy
- No harassment, discrimination, or toxic behavior
- Use appropriate language in all communications
- Follow staff instructions at all times

## 2. Character Guidelines
- Create realistic character names (no celebrity names, numbers, or symbols)
- Maintain character consistency and development
- No metagaming or powergaming
- Stay in character at all times in IC areas

## 3. Communication Rules
- Use /ooc sparingly and only when necessary
- No advertising other servers
- English only in global chats
- Report rule violations through proper channels

## 4. Fair Play
- No cheating, hacking, or exploiting bugs
- No alt accounts for unfair advantages
- Play fairly and maintain server integrity`,
			Category: "General Rules",
			Version:  "2.1.0",
			IsActive: true,
		},
		{
			Title: "Faction Management Rules",
			Content: `# Faction Management Rules

## Leadership Requirements
- Faction leaders must be active (minimum 20 hours per week)
- Leaders are responsible for member conduct
- Regular faction meetings and activities required
- Maintain faction roleplay standards

## Member Guidelines
- Follow faction hierarchy and chain of command
- Participate in faction activities
- Represent faction positively
- No faction hopping (30-day cooldown between factions)

## Faction Wars
- Must have valid IC reasons for conflicts
- Follow war declaration procedures
- Respect ceasefire agreements
- No targeting of uninvolved players`,
			Category: "Faction Rules",
			Version:  "1.8.0",
			IsActive: true,
		},
		{
			Title: "Gang Territory Rules",
			Content: `# Gang Territory Rules

## Territory Control
- Gangs can control maximum 3 territories
- Territory wars must be scheduled with admins
- 48-hour notice required for territory attacks
- Defend territories within 72 hours or lose control

## Gang Activities
- Illegal activities must be realistic
- No random violence or drive-bys
- Respect neutral zones and safe areas
- Follow drug dealing and weapon trafficking rules

## Recruitment
- No recruiting in OOC channels
- New members need 1-week probation period
- Background checks required for sensitive positions`,
			Category: "Gang Rules",
			Version:  "1.5.2",
			IsActive: true,
		},
	}

	for _, rule := range rules {
		var existing models.Rule
		if err := db.Where("title = ?", rule.Title).First(&existing).Error; err == nil {
			logger.Info().Str("title", rule.Title).Msg("Rule already exists, skipping")
			continue
		}
		if err := db.Create(&rule).Error; err != nil {
			return err
		}
		logger.Info().Str("title", rule.Title).Msg("Rule seeded")
	}

	return nil
}
