package chunk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload is returned by [Decode] when a payload cannot be
// interpreted as a chunk: the top-level value is not a JSON object, a present
// field has the wrong JSON type, or a choice carries no delta object at all.
// Match it with errors.Is.
var ErrMalformedPayload = errors.New("malformed chunk payload")

// Decode parses one raw streaming event payload into a [Chunk].
//
// Decoding is deliberately permissive: every field except a choice's delta is
// optional, JSON null and an absent key both decode to the unset zero value,
// and unknown wire fields are ignored so payloads from newer schema
// generations keep decoding before this package learns their fields. The only
// strictness retained is on JSON types — a number where a string belongs (or
// vice versa) is a malformed payload, not a value to coerce.
//
// Semantic validation is the caller's concern: a chunk with no choices and no
// usage decodes fine even though it carries nothing useful.
func Decode(data []byte) (*Chunk, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not a JSON object", ErrMalformedPayload)
	}

	var decoded Chunk
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, classifyDecodeError(err)
	}

	// The delta is the one sub-object a present choice must carry: its role
	// cannot be defaulted when the object holding it is missing entirely.
	for choiceIndex := range decoded.Choices {
		if decoded.Choices[choiceIndex].Delta == nil {
			return nil, fmt.Errorf("%w: choice %d has no delta", ErrMalformedPayload, choiceIndex)
		}
	}

	return &decoded, nil
}

// classifyDecodeError wraps encoding/json failures as ErrMalformedPayload,
// keeping the offending field path when the codec reports one.
func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "(top level)"
		}
		return fmt.Errorf("%w: field %s: cannot decode JSON %s into %s", ErrMalformedPayload, field, typeErr.Value, typeErr.Type)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: invalid JSON at offset %d: %v", ErrMalformedPayload, syntaxErr.Offset, syntaxErr)
	}

	return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
}
