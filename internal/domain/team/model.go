package team

import (
	"fmt"
	"strings"
)

// Team is one club taking part in a tournament. CMS fields and feed fields
// are merged during sync; the feed uses two alternate names for a club's
// short form, so display helpers apply one priority-ordered fallback chain
// instead of coalescing at call sites.
type Team struct {
	ID            string
	TournamentID  string
	Name          string
	ShortName     string
	FeedShortName string
	Group         string
	CrestURL      string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// DisplayShort picks the short display name: CMS short name first, then the
// feed's short club name, then the full name.
func (t Team) DisplayShort() string {
	for _, candidate := range []string{t.ShortName, t.FeedShortName, t.Name} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
