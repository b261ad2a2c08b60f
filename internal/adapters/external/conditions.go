package external

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
)

// FallbackConditionCode is the table entry used for codes the table does not know
const FallbackConditionCode = -1

//go:embed conditions.json
var defaultConditions []byte

// ConditionCatalogAdapter implements ConditionCatalog from a JSON table loaded once
type ConditionCatalogAdapter struct {
	byCode map[int]ports.Condition
	all    []ports.Condition
}

// NewConditionCatalog loads the table from path, or the embedded table when path is empty
func NewConditionCatalog(path string) (*ConditionCatalogAdapter, error) {
	raw := defaultConditions
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewConfigurationError(fmt.Sprintf("failed to read conditions file %s", path), err)
		}
		raw = data
	}
	return ParseConditionCatalog(raw)
}

// ParseConditionCatalog builds a catalog from a JSON array of conditions
func ParseConditionCatalog(raw []byte) (*ConditionCatalogAdapter, error) {
	var conditions []ports.Condition
	if err := json.Unmarshal(raw, &conditions); err != nil {
		return nil, errors.NewConfigurationError("failed to decode conditions table", err)
	}

	byCode := make(map[int]ports.Condition, len(conditions))
	for _, c := range conditions {
		byCode[c.Code] = c
	}
	if _, ok := byCode[FallbackConditionCode]; !ok {
		return nil, errors.NewConfigurationError("conditions table has no fallback entry (code -1)", nil)
	}

	sort.Slice(conditions, func(i, j int) bool { return conditions[i].Code < conditions[j].Code })
	return &ConditionCatalogAdapter{byCode: byCode, all: conditions}, nil
}

func (c *ConditionCatalogAdapter) Lookup(code int) ports.Condition {
	if condition, ok := c.byCode[code]; ok {
		return condition
	}
	return c.byCode[FallbackConditionCode]
}

func (c *ConditionCatalogAdapter) All() []ports.Condition {
	out := make([]ports.Condition, len(c.all))
	copy(out, c.all)
	return out
}

func conditionText(c ports.Condition, isDay bool) string {
	if isDay {
		return c.Day
	}
	return c.Night
}
