package snaplist

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the current snapshot as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Snapshot().Slice())
}

// UnmarshalJSON replaces the contents with the decoded JSON array.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("snaplist: decode json: %w", err)
	}
	l.Replace(items)
	return nil
}

// MarshalYAML encodes the current snapshot as a YAML sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.Snapshot().Slice(), nil
}

// UnmarshalYAML replaces the contents with the decoded YAML sequence, so a
// List can sit directly inside a YAML configuration struct.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("snaplist: decode yaml: %w", err)
	}
	l.Replace(items)
	return nil
}

// String returns a JSON representation of the current snapshot.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.Snapshot().Slice())
	}
	return string(b)
}
