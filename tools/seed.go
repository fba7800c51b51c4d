package tools

import (
	"listora/logger"
	"listora/models"
	"listora/store"
)

type seedPrompt struct {
	category models.Category
	title    string
	subtitle string
	content  string
}

// Default prompt packs installed on first boot. Re-seeding is safe: the
// duplicate-title guard turns every already-present prompt into a no-op.
var seedPrompts = []seedPrompt{
	{
		category: models.CategoryContent,
		title:    "New Listing Announcement",
		subtitle: "Social post for a fresh listing",
		content:  "Write an engaging social media post announcing a new listing at {address}. Highlight {key_features} and end with a call to action to book a showing.",
	},
	{
		category: models.CategoryContent,
		title:    "Open House Invitation",
		subtitle: "Email invite with date and time",
		content:  "Draft a friendly open house invitation email for {address} on {date} from {start_time} to {end_time}. Mention parking and refreshments.",
	},
	{
		category: models.CategoryContent,
		title:    "Just Sold Celebration",
		subtitle: "Post celebrating a closed sale",
		content:  "Write a celebratory post for a home just sold in {neighborhood}. Thank the clients without naming them and invite followers to reach out about the market.",
	},
	{
		category: models.CategoryCompliance,
		title:    "Fair Housing Review",
		subtitle: "Check copy for fair-housing issues",
		content:  "Review the following marketing copy for language that could violate fair housing rules. Flag each issue, explain why, and suggest a compliant rewrite: {copy}",
	},
	{
		category: models.CategoryCompliance,
		title:    "Disclosure Checklist",
		subtitle: "Required disclosures by listing type",
		content:  "List the disclosures typically required for a {property_type} listing in {state}, with a one-line explanation of each.",
	},
	{
		category: models.CategoryCoach,
		title:    "Cold Call Role-Play",
		subtitle: "Practice an expired-listing call",
		content:  "Act as a homeowner whose listing just expired. I am the agent calling you. Push back realistically on price and commission, and rate my handling at the end.",
	},
	{
		category: models.CategoryCoach,
		title:    "Objection Handling Drill",
		subtitle: "Common seller objections",
		content:  "Give me one common seller objection at a time. Wait for my response, then critique it and show a stronger version before moving to the next.",
	},
}

// SeedPromptPacks installs the default prompts. Enabled at startup via
// SEED=1, mirroring the AUTOMIGRATE toggle.
func SeedPromptPacks(s *store.Store, log *logger.Logger) {
	added, skipped := 0, 0
	for _, seed := range seedPrompts {
		asset := models.Asset{
			Type:     models.AssetTypePrompt,
			Title:    seed.title,
			Subtitle: seed.subtitle,
			Content:  seed.content,
			Source:   models.SourceCreated,
		}
		_, result, err := s.AddAsset(seed.category, asset)
		if err != nil {
			log.Warn("seed failed", "title", seed.title, "error", err)
			continue
		}
		if result == store.AddDuplicate {
			skipped++
			continue
		}
		added++
	}
	log.Info("prompt packs seeded", "added", added, "skipped", skipped)
}
