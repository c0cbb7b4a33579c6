// Package parse decodes accumulated tool-call argument strings into typed Go
// values. Arguments arrive over the stream as concatenated JSON fragments, so
// the final string is occasionally truncated or otherwise slightly broken;
// decoding falls back to JSON repair before giving up.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Arguments parses a tool-call arguments string into the given type. Strict
// JSON decoding is attempted first; on failure the string is repaired with
// jsonrepair and decoded once more. An empty string decodes to the zero value,
// matching models that call zero-parameter tools with no arguments at all.
//
// Example:
//
//	type weatherInput struct {
//	    City string `json:"city"`
//	}
//	input, err := parse.Arguments[weatherInput](call.Arguments)
func Arguments[T any](arguments string) (T, error) {
	var result T

	if arguments == "" {
		return result, nil
	}

	if err := json.Unmarshal([]byte(arguments), &result); err == nil {
		return result, nil
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(arguments)
	if repairErr != nil {
		return result, fmt.Errorf("arguments are not valid JSON and could not be repaired: %w", repairErr)
	}

	if err := json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to parse repaired arguments: %w", err)
	}
	return result, nil
}
