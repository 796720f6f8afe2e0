package match

// Stage filters partition a match list by the stage discriminant. The match
// is exact: a record with an unknown stage value belongs to no partition.

func GroupStage(matches []Match) []Match {
	return filterStage(matches, StageGroup)
}

func SemiFinals(matches []Match) []Match {
	return filterStage(matches, StageSemiFinal)
}

func ThirdPlace(matches []Match) []Match {
	return filterStage(matches, StageThirdPlace)
}

func Finals(matches []Match) []Match {
	return filterStage(matches, StageFinal)
}

func filterStage(matches []Match, stage string) []Match {
	out := make([]Match, 0, len(matches))
	for _, item := range matches {
		if item.Stage == stage {
			out = append(out, item)
		}
	}
	return out
}
