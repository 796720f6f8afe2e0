package tournament

import "fmt"

// Tournament is one event of the series as authored in the CMS.
type Tournament struct {
	ID                string
	Title             string
	Season            string
	Venue             string
	Groups            []string
	FeedCompetitionID string
	FeedSeasonID      string
	IsCurrent         bool
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Title == "" {
		return fmt.Errorf("tournament title is required")
	}

	return nil
}
