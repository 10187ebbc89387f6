package catalog

// Category represents a safety content category.
type Category string

const (
	CategoryLockoutTagout Category = "lockout-tagout"
	CategoryPPE           Category = "ppe"
	CategoryWiring        Category = "wiring"
	CategoryGrounding     Category = "grounding"
	CategoryArcFlash      Category = "arc-flash"
	CategoryLadderSafety  Category = "ladder-safety"
)

// CategoryAll is the sentinel filter value matching every category.
const CategoryAll Category = "All"

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryLockoutTagout:
		return "Lockout/Tagout"
	case CategoryPPE:
		return "PPE & Arc Protection"
	case CategoryWiring:
		return "Wiring & Circuits"
	case CategoryGrounding:
		return "Grounding & Bonding"
	case CategoryArcFlash:
		return "Arc Flash"
	case CategoryLadderSafety:
		return "Ladders & Elevated Work"
	case CategoryAll:
		return "All"
	default:
		return string(c)
	}
}

// Difficulty represents a scenario difficulty level.
type Difficulty string

const (
	DifficultyApprentice Difficulty = "apprentice"
	DifficultyJourneyman Difficulty = "journeyman"
	DifficultyMaster     Difficulty = "master"
)

// DifficultyAll is the sentinel filter value matching every difficulty.
const DifficultyAll Difficulty = "All"

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyApprentice, DifficultyJourneyman, DifficultyMaster}
}

// DifficultyDisplayName returns a human-readable name for a difficulty.
func DifficultyDisplayName(d Difficulty) string {
	switch d {
	case DifficultyApprentice:
		return "Apprentice"
	case DifficultyJourneyman:
		return "Journeyman"
	case DifficultyMaster:
		return "Master"
	case DifficultyAll:
		return "All"
	default:
		return string(d)
	}
}

// Option is one selectable answer choice within a Step.
type Option struct {
	ID        string `json:"id"` // stable short code, "A".."D"
	Text      string `json:"text"`
	Correct   bool   `json:"correct"`
	Feedback  string `json:"feedback"`
	Reference string `json:"reference,omitempty"` // code/standard citation, e.g. NFPA 70E article
}

// Step is one decision point within a Scenario.
type Step struct {
	ID        string   `json:"id"`
	Situation string   `json:"situation"`
	Question  string   `json:"question"`
	Options   []Option `json:"options"`
}

// CorrectOption returns the step's correct option.
// Content validation guarantees exactly one exists.
func (s *Step) CorrectOption() *Option {
	for i := range s.Options {
		if s.Options[i].Correct {
			return &s.Options[i]
		}
	}
	return nil
}

// Option returns the option with the given id, or nil if not present.
func (s *Step) Option(id string) *Option {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}

// Scenario is a static multi-step safety exercise. Immutable at runtime.
type Scenario struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Category      Category   `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	RealWorldCase string     `json:"realWorldCase,omitempty"`
	Steps         []Step     `json:"steps"`
}

// Pack is a versioned bundle of scenarios as stored on disk.
type Pack struct {
	SchemaVersion string     `json:"schemaVersion"`
	Scenarios     []Scenario `json:"scenarios"`
}
