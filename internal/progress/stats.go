package progress

import "github.com/tsamuels/livewire/internal/catalog"

// IsScenarioCompleted reports whether a completion record exists for the id.
func IsScenarioCompleted(s *Store, scenarioID string) bool {
	_, ok := s.Completed[scenarioID]
	return ok
}

// CompletionPercentage returns the rounded percentage of catalog scenarios
// with a completion record. 0 for an empty catalog.
func CompletionPercentage(s *Store, all []catalog.Scenario) int {
	if len(all) == 0 {
		return 0
	}
	completed := 0
	for _, sc := range all {
		if IsScenarioCompleted(s, sc.ID) {
			completed++
		}
	}
	return ScorePercent(completed, len(all))
}
