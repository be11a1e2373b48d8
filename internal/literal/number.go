// Package literal holds the JSON form of numeric literals shared by both
// tree families.
package literal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrBadNumber is returned for JSON values that are neither numbers nor strings.
var ErrBadNumber = errors.New("numeric literal must be a JSON number or string")

// MarshalNumber emits text as a bare JSON number when it is one, and as a
// JSON string otherwise ("10L", "0x1f", "2j").
func MarshalNumber(text string) ([]byte, error) {
	if json.Valid([]byte(text)) {
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return []byte(text), nil
		}
	}

	data, err := json.Marshal(text)
	if err != nil {
		return nil, fmt.Errorf("marshal number %q: %w", text, err)
	}

	return data, nil
}

// UnmarshalNumber accepts a JSON number or a JSON string and returns its text.
func UnmarshalNumber(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", ErrBadNumber
	}

	if trimmed[0] == '"' {
		var s string

		err := json.Unmarshal(trimmed, &s)
		if err != nil {
			return "", errors.Join(ErrBadNumber, err)
		}

		return s, nil
	}

	var num json.Number

	err := json.Unmarshal(trimmed, &num)
	if err != nil {
		return "", errors.Join(ErrBadNumber, err)
	}

	return num.String(), nil
}
