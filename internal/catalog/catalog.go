package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// PackVersion is the content pack schema version this build understands.
// Packs with a different major version are rejected at load.
const PackVersion = "v1.0.0"

//go:embed data/*.json
var packFS embed.FS

var (
	loadOnce  sync.Once
	scenarios []Scenario
	loadErr   error
)

// Load parses, validates, and caches the embedded scenario packs.
// Subsequent calls return the cached result.
func Load() ([]Scenario, error) {
	loadOnce.Do(func() {
		scenarios, loadErr = loadPacks()
	})
	return scenarios, loadErr
}

// MustLoad returns the catalog or panics. Embedded content is validated
// in tests, so a failure here means a broken build, not a runtime condition.
func MustLoad() []Scenario {
	all, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return all
}

// ByID returns the scenario with the given id, or nil if not present.
func ByID(all []Scenario, id string) *Scenario {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

func loadPacks() ([]Scenario, error) {
	entries, err := packFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read pack dir: %w", err)
	}

	// Packs load in lexical order so catalog order is stable across builds.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	compiled, err := compilePackSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}

	var all []Scenario
	for _, name := range names {
		raw, err := packFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read pack %s: %w", name, err)
		}

		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parse pack %s: %w", name, err)
		}
		if err := compiled.Validate(parsed); err != nil {
			return nil, fmt.Errorf("pack %s: schema validation failed: %w", name, err)
		}

		var pack Pack
		if err := json.Unmarshal(raw, &pack); err != nil {
			return nil, fmt.Errorf("decode pack %s: %w", name, err)
		}

		if !semver.IsValid(pack.SchemaVersion) {
			return nil, fmt.Errorf("pack %s: invalid schema version %q", name, pack.SchemaVersion)
		}
		if semver.Major(pack.SchemaVersion) != semver.Major(PackVersion) {
			return nil, fmt.Errorf("pack %s: schema version %s incompatible with %s",
				name, pack.SchemaVersion, PackVersion)
		}

		all = append(all, pack.Scenarios...)
	}

	if err := validateScenarios(all); err != nil {
		return nil, fmt.Errorf("invalid catalog content: %w", err)
	}
	return all, nil
}

func compilePackSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(packSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://scenario-pack.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
