package costs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// returned when the cost table has no entry for the requested model.
// callers must not treat this as a zero cost.
var ErrUnknownModel = errors.New("model not found in cost table")

// per-model pricing in dollars per token
type ModelRates struct {
	Prompt     float64 `json:"prompt"`
	Completion float64 `json:"completion"`
}

// maps model names to their prompt/completion token rates
type Table struct {
	rates map[string]ModelRates
}

// file layout of openai_costs.json
type costFile struct {
	OpenAILLMs map[string]ModelRates `json:"openai_LLMs"`
}

// loads a cost table from a JSON file
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cost table: %w", err)
	}

	var file costFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse cost table: %w", err)
	}

	if len(file.OpenAILLMs) == 0 {
		return nil, fmt.Errorf("cost table %s contains no models", path)
	}

	return &Table{rates: file.OpenAILLMs}, nil
}

// creates a cost table from an in-memory rate map
func NewTable(rates map[string]ModelRates) *Table {
	return &Table{rates: rates}
}

// calculates the total cost for a model given prompt and completion token counts
func (t *Table) ComputeCost(model string, promptTokens, completionTokens int) (float64, error) {
	rates, ok := t.rates[model]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}

	return rates.Prompt*float64(promptTokens) + rates.Completion*float64(completionTokens), nil
}

// reports whether the table has rates for the given model
func (t *Table) HasModel(model string) bool {
	_, ok := t.rates[model]
	return ok
}
