package prismic

import (
	"strings"
	"time"

	"github.com/sevens-series/tournament-api/internal/usecase"
)

// Document payloads as the repository's custom types store them. Rich text
// fields arrive as span lists; only the plain text is kept.

type apiEnvelope struct {
	Refs []apiRef `json:"refs"`
}

type apiRef struct {
	Ref         string `json:"ref"`
	IsMasterRef bool   `json:"isMasterRef"`
}

type searchEnvelope struct {
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Results    []document `json:"results"`
}

type document struct {
	ID   string       `json:"id"`
	UID  string       `json:"uid"`
	Type string       `json:"type"`
	Data documentData `json:"data"`
}

type documentData struct {
	Title             []richTextSpan `json:"title"`
	Season            string         `json:"season"`
	Venue             string         `json:"venue"`
	Groups            []groupItem    `json:"groups"`
	FeedCompetitionID string         `json:"feed_competition_id"`
	FeedSeasonID      string         `json:"feed_season_id"`
	IsCurrent         bool           `json:"is_current"`

	FeedRef   string    `json:"feed_ref"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Group     string    `json:"group"`
	Crest     imageView `json:"crest"`

	Tournament  linkField `json:"tournament"`
	Stage       string    `json:"stage"`
	MatchNumber int       `json:"match_number"`
	HomeName    string    `json:"home_team"`
	AwayName    string    `json:"away_team"`
	Kickoff     string    `json:"kickoff"`
}

type richTextSpan struct {
	Text string `json:"text"`
}

type groupItem struct {
	GroupName string `json:"group_name"`
}

type imageView struct {
	URL string `json:"url"`
}

type linkField struct {
	ID string `json:"id"`
}

func richText(spans []richTextSpan) string {
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		if trimmed := strings.TrimSpace(span.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

func mapTournamentDocs(docs []document) []usecase.ExternalTournamentDoc {
	out := make([]usecase.ExternalTournamentDoc, 0, len(docs))
	for _, doc := range docs {
		id := firstNonEmpty(doc.UID, doc.ID)
		if id == "" {
			continue
		}
		groups := make([]string, 0, len(doc.Data.Groups))
		for _, item := range doc.Data.Groups {
			if name := strings.TrimSpace(item.GroupName); name != "" {
				groups = append(groups, name)
			}
		}
		out = append(out, usecase.ExternalTournamentDoc{
			ID:                id,
			Title:             richText(doc.Data.Title),
			Season:            strings.TrimSpace(doc.Data.Season),
			Venue:             strings.TrimSpace(doc.Data.Venue),
			Groups:            groups,
			FeedCompetitionID: strings.TrimSpace(doc.Data.FeedCompetitionID),
			FeedSeasonID:      strings.TrimSpace(doc.Data.FeedSeasonID),
			IsCurrent:         doc.Data.IsCurrent,
		})
	}
	return out
}

func mapTeamDocs(docs []document) []usecase.ExternalTeamDoc {
	out := make([]usecase.ExternalTeamDoc, 0, len(docs))
	for _, doc := range docs {
		id := firstNonEmpty(doc.UID, doc.ID)
		if id == "" || strings.TrimSpace(doc.Data.Name) == "" {
			continue
		}
		out = append(out, usecase.ExternalTeamDoc{
			ID:        id,
			FeedRef:   strings.TrimSpace(doc.Data.FeedRef),
			Name:      strings.TrimSpace(doc.Data.Name),
			ShortName: strings.TrimSpace(doc.Data.ShortName),
			CrestURL:  strings.TrimSpace(doc.Data.Crest.URL),
			Group:     strings.TrimSpace(doc.Data.Group),
		})
	}
	return out
}

func mapMatchDocs(docs []document) []usecase.ExternalMatchDoc {
	out := make([]usecase.ExternalMatchDoc, 0, len(docs))
	for _, doc := range docs {
		id := firstNonEmpty(doc.UID, doc.ID)
		if id == "" {
			continue
		}
		kickoff, _ := time.Parse(time.RFC3339, strings.TrimSpace(doc.Data.Kickoff))
		out = append(out, usecase.ExternalMatchDoc{
			ID:          id,
			FeedRef:     strings.TrimSpace(doc.Data.FeedRef),
			Stage:       strings.TrimSpace(doc.Data.Stage),
			Group:       strings.TrimSpace(doc.Data.Group),
			MatchNumber: doc.Data.MatchNumber,
			HomeName:    strings.TrimSpace(doc.Data.HomeName),
			AwayName:    strings.TrimSpace(doc.Data.AwayName),
			KickoffUTC:  kickoff.UTC(),
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
