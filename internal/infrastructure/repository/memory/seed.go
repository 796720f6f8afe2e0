package memory

import (
	"time"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

// Demo data served when no database is configured. The fixture list mirrors
// a real event shape: two groups of four, finished group games and a bracket
// still waiting on qualifiers.
const (
	TournamentIDLondon2026 = "london-2026"
	TournamentIDLisbon2025 = "lisbon-2025"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:        TournamentIDLondon2026,
			Title:     "London 2026",
			Season:    "2026",
			Venue:     "Queen Elizabeth Olympic Park",
			Groups:    []string{"Group 1", "Group 2"},
			IsCurrent: true,
		},
		{
			ID:     TournamentIDLisbon2025,
			Title:  "Lisbon 2025",
			Season: "2025",
			Venue:  "Estádio Nacional",
			Groups: []string{"Group 1", "Group 2"},
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "1", TournamentID: TournamentIDLondon2026, Name: "North London Sevens", ShortName: "North", FeedShortName: "NLS", Group: "Group 1"},
		{ID: "2", TournamentID: TournamentIDLondon2026, Name: "River Plate Femenino", ShortName: "River", FeedShortName: "RIV", Group: "Group 1"},
		{ID: "3", TournamentID: TournamentIDLondon2026, Name: "Copenhagen Union", ShortName: "Copenhagen", FeedShortName: "CPH", Group: "Group 1"},
		{ID: "4", TournamentID: TournamentIDLondon2026, Name: "Lagos Queens", ShortName: "Lagos", FeedShortName: "LAG", Group: "Group 1"},
		{ID: "5", TournamentID: TournamentIDLondon2026, Name: "Tokyo Waves", ShortName: "Tokyo", FeedShortName: "TOK", Group: "Group 2"},
		{ID: "6", TournamentID: TournamentIDLondon2026, Name: "Marseille Bleues", ShortName: "Marseille", FeedShortName: "MAR", Group: "Group 2"},
		{ID: "7", TournamentID: TournamentIDLondon2026, Name: "Toronto Northern", ShortName: "Toronto", FeedShortName: "TOR", Group: "Group 2"},
		{ID: "8", TournamentID: TournamentIDLondon2026, Name: "Cape Town Atlantic", ShortName: "Cape Town", FeedShortName: "CPT", Group: "Group 2"},
	}
}

func SeedMatches() []match.Match {
	day1 := time.Date(2026, time.May, 28, 16, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.May, 29, 16, 0, 0, 0, time.UTC)

	return []match.Match{
		groupResult("101", "Group 1", 1, day1, "1", "North London Sevens", "2", "River Plate Femenino", 2, 1),
		groupResult("102", "Group 1", 2, day1.Add(time.Hour), "3", "Copenhagen Union", "4", "Lagos Queens", 0, 0),
		groupResult("103", "Group 2", 3, day1.Add(2*time.Hour), "5", "Tokyo Waves", "6", "Marseille Bleues", 1, 3),
		groupResult("104", "Group 2", 4, day1.Add(3*time.Hour), "7", "Toronto Northern", "8", "Cape Town Atlantic", 2, 2),
		{
			ID:           "201",
			TournamentID: TournamentIDLondon2026,
			Stage:        match.StageSemiFinal,
			MatchNumber:  1,
			HomeName:     "Group 1 Winner",
			AwayName:     "Group 2 Runner-Up",
			KickoffUTC:   day2,
			Status:       match.StatusScheduled,
		},
		{
			ID:           "202",
			TournamentID: TournamentIDLondon2026,
			Stage:        match.StageSemiFinal,
			MatchNumber:  2,
			HomeName:     "Group 2 Winner",
			AwayName:     "Group 1 Runner-Up",
			KickoffUTC:   day2.Add(time.Hour),
			Status:       match.StatusScheduled,
		},
		{
			ID:           "301",
			TournamentID: TournamentIDLondon2026,
			Stage:        match.StageThirdPlace,
			MatchNumber:  1,
			HomeName:     "Semi-Final 1 Loser",
			AwayName:     "Semi-Final 2 Loser",
			KickoffUTC:   day2.Add(3 * time.Hour),
			Status:       match.StatusScheduled,
		},
		{
			ID:           "302",
			TournamentID: TournamentIDLondon2026,
			Stage:        match.StageFinal,
			MatchNumber:  1,
			HomeName:     "Semi-Final 1 Winner",
			AwayName:     "Semi-Final 2 Winner",
			KickoffUTC:   day2.Add(4 * time.Hour),
			Status:       match.StatusScheduled,
		},
	}
}

func groupResult(id, group string, number int, kickoff time.Time, homeID, homeName, awayID, awayName string, homeScore, awayScore int) match.Match {
	m := match.Match{
		ID:           id,
		TournamentID: TournamentIDLondon2026,
		Stage:        match.StageGroup,
		Group:        group,
		MatchNumber:  number,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		HomeName:     homeName,
		AwayName:     awayName,
		KickoffUTC:   kickoff,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		Status:       match.StatusFinished,
	}
	if homeScore > awayScore {
		m.WinnerTeamID = homeID
	} else if awayScore > homeScore {
		m.WinnerTeamID = awayID
	}

	return m
}

func SeedTeamStats() []playerstats.TeamStats {
	return []playerstats.TeamStats{
		{
			TeamRef:  "1",
			TeamName: "North London Sevens",
			Players: []playerstats.PlayerStats{
				{
					PlayerRef: "11",
					FirstName: "Amara",
					LastName:  "Okafor",
					Position:  "Forward",
					Values: map[string]float64{
						playerstats.StatGoals:       2,
						playerstats.StatShots:       5,
						playerstats.StatAppearances: 1,
					},
				},
				{
					PlayerRef: "12",
					FirstName: "Freya",
					LastName:  "Lindqvist",
					Position:  playerstats.PositionGoalkeeper,
					Values: map[string]float64{
						playerstats.StatSaves:       4,
						playerstats.StatCleanSheets: 0,
						playerstats.StatAppearances: 1,
					},
				},
			},
		},
		{
			TeamRef:  "6",
			TeamName: "Marseille Bleues",
			Players: []playerstats.PlayerStats{
				{
					PlayerRef: "61",
					FirstName: "Inès",
					LastName:  "Moreau",
					Position:  "Midfielder",
					Values: map[string]float64{
						playerstats.StatGoals:       1,
						playerstats.StatAssists:     2,
						playerstats.StatAppearances: 1,
					},
				},
			},
		},
	}
}
