// internal/models/answer.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer is one questionnaire response. Choice and scale answers hold a single
// value; select and ranking answers hold an ordered list.
type Answer struct {
	values []string
	list   bool
}

// Answers maps question id to the user's response.
type Answers map[string]Answer

func SingleAnswer(value string) Answer {
	return Answer{values: []string{value}}
}

func ListAnswer(values ...string) Answer {
	return Answer{values: append([]string(nil), values...), list: true}
}

// Value returns the scalar value, or the first list element.
func (a Answer) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

func (a Answer) Values() []string {
	return append([]string(nil), a.values...)
}

func (a Answer) IsList() bool {
	return a.list
}

func (a Answer) IsEmpty() bool {
	return len(a.values) == 0
}

// UnmarshalJSON accepts a string, a number, null or an array of strings and numbers.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		values := make([]string, 0, len(raw))
		for i, item := range raw {
			v, err := scalarString(item)
			if err != nil {
				return fmt.Errorf("answer element %d: %w", i, err)
			}
			values = append(values, v)
		}
		*a = Answer{values: values, list: true}
		return nil
	}

	v, err := scalarString(data)
	if err != nil {
		return err
	}
	*a = SingleAnswer(v)
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.list {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	if len(a.values) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(a.values[0])
}

func scalarString(data []byte) (string, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("answer must be a string or a number, got %s", string(data))
	}
	return n.String(), nil
}
