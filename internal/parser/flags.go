package parser

import (
	"strings"

	"github.com/baronet2/FirstCyclingScraper/internal/models"
)

// DeriveFlags computes the race-type attributes of one result record from
// its category code, race name and raw icon code. The steps are ordered:
// jersey colour is resolved before profile, and the time-trial and terrain
// flags read the resolved profile.
func DeriveFlags(category, raceName string, icon *string) models.DerivedFlags {
	flags := models.DerivedFlags{
		UCIRace:      uciCategories[category],
		Championship: championshipCategories[category],
		U23:          u23Categories[category],
		CX:           strings.HasPrefix(raceName, "CX -"),
		Juniors:      strings.HasPrefix(category, "J"),
		OneDay:       oneDayCategories[category],
	}

	// An icon encodes either a jersey colour or a terrain profile, never
	// both: profile is looked up only when no colour matched.
	if icon != nil {
		flags.JerseyColour = jerseyColour(*icon)
		if flags.JerseyColour == nil {
			if profile, ok := profileIcons[*icon]; ok {
				flags.Profile = &profile
			}
		}
	}

	if flags.Profile != nil {
		profile := *flags.Profile
		flags.TTT = boolPtr(profile == "TTT")
		flags.ITT = boolPtr(strings.Contains(profile, "ITT"))
		flags.TT = orMaybe(flags.ITT, flags.TTT)
		flags.MTF = boolPtr(strings.HasSuffix(profile, " MTF"))
		flags.Mountain = boolPtr(strings.Contains(profile, "Mountain"))
		flags.Hilly = boolPtr(strings.Contains(profile, "Hilly"))
		flags.Flat = boolPtr(strings.Contains(profile, "Flat"))
		flags.Cobbled = boolPtr(strings.Contains(profile, "Cobbles"))
	}

	return flags
}

// jerseyColour tests an icon code against the ordered colour token list,
// stopping at the first hit, and capitalizes the match.
func jerseyColour(icon string) *string {
	for _, colour := range colourIcons {
		if strings.Contains(icon, colour+".") {
			capitalized := strings.ToUpper(colour[:1]) + colour[1:]
			return &capitalized
		}
	}
	return nil
}

// orMaybe is a three-valued OR: a known true on either side forces true,
// otherwise absence propagates (absent OR absent = absent, absent OR false =
// absent).
func orMaybe(a, b *bool) *bool {
	if a != nil && *a {
		return boolPtr(true)
	}
	if b != nil && *b {
		return boolPtr(true)
	}
	if a == nil || b == nil {
		return nil
	}
	return boolPtr(false)
}

func boolPtr(b bool) *bool { return &b }
