package wish

import (
	"strings"

	"github.com/TeQuac/Gratulations/internal/config"
)

// Signal is the personality signal derived from a contact description:
// the matched trait tags in group-priority order, and the vibe of the
// first matching group.
type Signal struct {
	Traits []string
	Vibe   string
}

// keywordGroup maps trigger substrings to one trait tag and one vibe tag.
type keywordGroup struct {
	triggers []string
	trait    string
	vibe     string
}

// keywordGroups are evaluated in fixed priority order; the first match owns
// the vibe. Matching is plain substring containment on the lower-cased
// description, so triggers also match inside longer words ("warm" in
// "warmherzig"). That is the shipped behavior; wording selection downstream
// depends on it.
var keywordGroups = []keywordGroup{
	{triggers: []string{"humor", "lustig", "lachen", "witz"}, trait: config.TraitHumorous, vibe: config.VibeCasual},
	{triggers: []string{"kreativ", "idee", "kunst", "musik"}, trait: config.TraitCreative, vibe: config.VibeVivid},
	{triggers: []string{"hilfsbereit", "zuverlässig", "ehrlich", "treu"}, trait: config.TraitReliable, vibe: config.VibeWarm},
	{triggers: []string{"stark", "mutig", "kämpfer", "durchhalte"}, trait: config.TraitStrong, vibe: config.VibeAppreciative},
	{triggers: []string{"ruhig", "gelassen", "entspannt"}, trait: config.TraitCalm, vibe: config.VibeCalm},
	{triggers: []string{"herzlich", "warm", "lieb", "empath"}, trait: config.TraitWarm, vibe: config.VibeClose},
}

// ExtractSignals scans a free-text description for the known keyword
// families. An absent or empty description yields no traits and the neutral
// vibe. Pure function, safe for concurrent use.
func ExtractSignals(description string) Signal {
	text := strings.ToLower(description)
	sig := Signal{Vibe: config.VibeNeutral}

	for _, group := range keywordGroups {
		if !containsAny(text, group.triggers) {
			continue
		}
		sig.Traits = append(sig.Traits, group.trait)
		if sig.Vibe == config.VibeNeutral {
			sig.Vibe = group.vibe
		}
	}

	return sig
}

func containsAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}
