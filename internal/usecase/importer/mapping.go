package importer

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
)

// Mapping holds the legacy-to-current value translation tables. The zero
// value is unusable; start from DefaultMapping or a TOML file.
type Mapping struct {
	DefaultStatus string            `toml:"default_status"`
	DefaultType   string            `toml:"default_type"`
	Status        map[string]string `toml:"status"`
	Type          map[string]string `toml:"type"`
}

// DefaultMapping mirrors the translation the one-off migration used against
// the production SQL Server export.
func DefaultMapping() Mapping {
	return Mapping{
		DefaultStatus: string(domain.StatusOpen),
		DefaultType:   string(domain.TypeBug),
		Status: map[string]string{
			"Applied To Master":     string(domain.StatusCompleted),
			"Released to Customers": string(domain.StatusDeployed),
			"Completed":             string(domain.StatusCompleted),
			"In Progress":           string(domain.StatusInProgress),
			"Testing":               string(domain.StatusTesting),
			"Open":                  string(domain.StatusOpen),
		},
		Type: map[string]string{
			"Enhancement": string(domain.TypeEnhancement),
			"Fault":       string(domain.TypeFault),
			"Suggestion":  string(domain.TypeSuggestion),
			"Bug":         string(domain.TypeFault),
			"Feature":     string(domain.TypeEnhancement),
		},
	}
}

// LoadMapping reads a TOML mapping file. Tables and defaults present in the
// file override the built-in mapping; everything else is kept.
func LoadMapping(path string) (Mapping, error) {
	m := DefaultMapping()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, errs.Wrap(err, "read mapping file")
	}

	var override Mapping
	if err := toml.Unmarshal(data, &override); err != nil {
		return Mapping{}, errs.Wrap(err, "parse mapping file")
	}

	if override.DefaultStatus != "" {
		m.DefaultStatus = override.DefaultStatus
	}
	if override.DefaultType != "" {
		m.DefaultType = override.DefaultType
	}
	if len(override.Status) > 0 {
		m.Status = override.Status
	}
	if len(override.Type) > 0 {
		m.Type = override.Type
	}
	return m, nil
}

// MapStatus translates a legacy status; unknown or empty values fall back to
// the default.
func (m Mapping) MapStatus(old string) string {
	if old == "" {
		return m.DefaultStatus
	}
	if mapped, ok := m.Status[old]; ok {
		return mapped
	}
	return m.DefaultStatus
}

// MapType translates a legacy amendment type; unknown or empty values fall
// back to the default.
func (m Mapping) MapType(old string) string {
	if old == "" {
		return m.DefaultType
	}
	if mapped, ok := m.Type[old]; ok {
		return mapped
	}
	return m.DefaultType
}

// DeriveDevelopmentStatus infers the engineering sub-state from the mapped
// workflow status. The legacy schema never stored it as text.
func DeriveDevelopmentStatus(status string) string {
	switch status {
	case string(domain.StatusDeployed), string(domain.StatusCompleted), string(domain.StatusTesting):
		return string(domain.DevReadyForQA)
	case string(domain.StatusInProgress):
		return string(domain.DevInDevelopment)
	default:
		return string(domain.DevNotStarted)
	}
}
