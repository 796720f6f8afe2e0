package httpapi

import (
	"time"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

type tournamentDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Season    string   `json:"season,omitempty"`
	Venue     string   `json:"venue,omitempty"`
	Groups    []string `json:"groups,omitempty"`
	IsCurrent bool     `json:"isCurrent"`
}

func tournamentToDTO(item tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:        item.ID,
		Title:     item.Title,
		Season:    item.Season,
		Venue:     item.Venue,
		Groups:    item.Groups,
		IsCurrent: item.IsCurrent,
	}
}

type matchDTO struct {
	ID           string `json:"id"`
	Stage        string `json:"stage"`
	Group        string `json:"group,omitempty"`
	MatchNumber  int    `json:"matchNumber"`
	HomeTeamID   string `json:"homeTeamId,omitempty"`
	AwayTeamID   string `json:"awayTeamId,omitempty"`
	HomeName     string `json:"homeName"`
	AwayName     string `json:"awayName"`
	KickoffUTC   string `json:"kickoffUtc"`
	HomeScore    *int   `json:"homeScore,omitempty"`
	AwayScore    *int   `json:"awayScore,omitempty"`
	Status       string `json:"status"`
	WinnerTeamID string `json:"winnerTeamId,omitempty"`
	Penalties    bool   `json:"penalties,omitempty"`
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:           item.ID,
		Stage:        item.Stage,
		Group:        item.Group,
		MatchNumber:  item.MatchNumber,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		HomeName:     item.HomeName,
		AwayName:     item.AwayName,
		KickoffUTC:   item.KickoffUTC.UTC().Format(time.RFC3339),
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		Status:       item.Status,
		WinnerTeamID: item.WinnerTeamID,
		Penalties:    item.Penalties,
	}
}

type dayGroupDTO struct {
	Date    string     `json:"date"`
	Matches []matchDTO `json:"matches"`
}

func dayGroupsToDTO(days []match.DayGroup) []dayGroupDTO {
	out := make([]dayGroupDTO, 0, len(days))
	for _, day := range days {
		matches := make([]matchDTO, 0, len(day.Matches))
		for _, item := range day.Matches {
			matches = append(matches, matchToDTO(item))
		}
		out = append(out, dayGroupDTO{Date: day.Date, Matches: matches})
	}
	return out
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type groupTableDTO struct {
	Group    string        `json:"group"`
	FromFeed bool          `json:"fromFeed"`
	Rows     []standingDTO `json:"rows"`
}

func groupTablesToDTO(tables []usecase.GroupTable) []groupTableDTO {
	out := make([]groupTableDTO, 0, len(tables))
	for _, table := range tables {
		rows := make([]standingDTO, 0, len(table.Rows))
		for _, row := range table.Rows {
			rows = append(rows, standingToDTO(row))
		}
		out = append(out, groupTableDTO{Group: table.Group, FromFeed: table.FromFeed, Rows: rows})
	}
	return out
}

func standingToDTO(row standings.Standing) standingDTO {
	return standingDTO{
		Position:       row.Position,
		TeamID:         row.TeamID,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

type leaderboardRowDTO struct {
	Rank      int                `json:"rank"`
	RankLabel string             `json:"rankLabel"`
	PlayerRef string             `json:"playerRef"`
	Player    string             `json:"player"`
	TeamRef   string             `json:"teamRef"`
	Team      string             `json:"team"`
	Values    map[string]float64 `json:"values"`
}

type leaderboardDTO struct {
	Category  string              `json:"category"`
	Page      int                 `json:"page"`
	PageCount int                 `json:"pageCount"`
	Total     int                 `json:"total"`
	Rows      []leaderboardRowDTO `json:"rows"`
}

func leaderboardToDTO(board playerstats.Leaderboard) leaderboardDTO {
	rows := make([]leaderboardRowDTO, 0, len(board.Rows))
	for _, row := range board.Rows {
		rows = append(rows, leaderboardRowDTO{
			Rank:      row.Rank,
			RankLabel: row.RankLabel,
			PlayerRef: row.PlayerRef,
			Player:    row.Player,
			TeamRef:   row.TeamRef,
			Team:      row.Team,
			Values:    row.Values,
		})
	}
	return leaderboardDTO{
		Category:  string(board.Category),
		Page:      board.Page,
		PageCount: board.PageCount,
		Total:     board.Total,
		Rows:      rows,
	}
}
