package catalog

import (
	"fmt"
	"strings"
)

// validateScenarios performs the structural checks the scenario engine
// depends on but does not enforce itself: unique ids and exactly one
// correct option per step. Returns a combined error describing all
// problems found, or nil if valid.
func validateScenarios(all []Scenario) error {
	var errs []string

	idSet := make(map[string]bool, len(all))
	for _, sc := range all {
		if idSet[sc.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario ID: %q", sc.ID))
		}
		idSet[sc.ID] = true

		if len(sc.Steps) == 0 {
			errs = append(errs, fmt.Sprintf("scenario %q has no steps", sc.ID))
		}

		stepIDs := make(map[string]bool, len(sc.Steps))
		for _, step := range sc.Steps {
			if stepIDs[step.ID] {
				errs = append(errs, fmt.Sprintf("scenario %q: duplicate step ID %q", sc.ID, step.ID))
			}
			stepIDs[step.ID] = true

			correct := 0
			optIDs := make(map[string]bool, len(step.Options))
			for _, opt := range step.Options {
				if optIDs[opt.ID] {
					errs = append(errs, fmt.Sprintf("scenario %q step %q: duplicate option ID %q", sc.ID, step.ID, opt.ID))
				}
				optIDs[opt.ID] = true
				if opt.Correct {
					correct++
				}
			}
			if correct != 1 {
				errs = append(errs, fmt.Sprintf("scenario %q step %q: %d correct options, want exactly 1", sc.ID, step.ID, correct))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
