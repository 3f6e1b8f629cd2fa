package steam

import "strings"

const launchName = "ENABLE_VKBASALT"

// LaunchVariable enables the vkBasalt layer for a game
const LaunchVariable = launchName + "=1"

const commandToken = "%command%"

// MergeLaunchOptions adds LaunchVariable to existing launch options.
// Any other value of the variable is replaced, and options that already
// set it exactly once are returned unchanged.
func MergeLaunchOptions(existing string) string {
	existing = strings.TrimSpace(existing)

	prefix := launchName + "="
	var rest []string
	set, others := 0, 0
	for _, tok := range strings.Fields(existing) {
		switch {
		case tok == LaunchVariable:
			set++
		case strings.HasPrefix(tok, prefix):
			others++
		default:
			rest = append(rest, tok)
		}
	}
	if set == 1 && others == 0 {
		return existing
	}

	existing = strings.Join(rest, " ")
	if existing == "" {
		return LaunchVariable + " " + commandToken
	}
	if strings.Contains(existing, commandToken) {
		return LaunchVariable + " " + existing
	}
	return LaunchVariable + " " + existing + " " + commandToken
}

// LaunchHint returns the line users add to a game's Steam launch options
func LaunchHint() string {
	return LaunchVariable + " <your existing launch arguments> " + commandToken
}
