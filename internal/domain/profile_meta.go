package domain

// ProfileMeta carries the presentation metadata for a profile classification.
// Static lookup keyed by ProfileType; display detail, not logic.
type ProfileMeta struct {
	Title       string
	Color       string
	Description string
}

var profileMeta = map[ProfileType]ProfileMeta{
	ProfileCautious: {
		Title:       "Cautious",
		Color:       "#4CAF50",
		Description: "Preserves the bankroll with small, controlled stakes.",
	},
	ProfileBalanced: {
		Title:       "Balanced",
		Color:       "#FF9800",
		Description: "Balances growth and protection with moderate stakes.",
	},
	ProfileHighRisk: {
		Title:       "High Risk",
		Color:       "#F44336",
		Description: "Chases aggressive growth and accepts large swings.",
	},
}

// MetaFor returns the presentation metadata for a profile type.
// Unknown types fall back to the Balanced metadata.
func MetaFor(profileType ProfileType) ProfileMeta {
	if meta, ok := profileMeta[profileType]; ok {
		return meta
	}
	return profileMeta[ProfileBalanced]
}
