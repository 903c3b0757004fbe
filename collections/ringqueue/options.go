package ringqueue

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// DefaultCapacity is the buffer size used when Options.Capacity is zero.
const DefaultCapacity = 32

// Options configures a [Queue].
//
// Options carries yaml tags so it can be embedded in a service's YAML
// configuration; fields missing from the document keep their
// [DefaultOptions] values.
type Options struct {
	// Capacity is the initial buffer size. Zero selects [DefaultCapacity];
	// negative values are rejected.
	Capacity int `yaml:"capacity"`

	// Growth lets Enqueue reallocate a full buffer instead of failing.
	// Default: true.
	Growth bool `yaml:"growth"`

	// ClearSlots zeroes slots vacated by dequeues and removals so the queue
	// does not keep removed values reachable. Default: true.
	ClearSlots bool `yaml:"clearSlots"`

	// Logger receives debug records for reallocations. Defaults to
	// slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns Options with [DefaultCapacity], growth enabled and
// slot clearing enabled.
func DefaultOptions() Options {
	return Options{
		Capacity:   DefaultCapacity,
		Growth:     true,
		ClearSlots: true,
		Logger:     slog.Default(),
	}
}

// UnmarshalYAML decodes node on top of [DefaultOptions].
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	type plain Options
	p := plain(DefaultOptions())
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("ringqueue: decode options: %w", err)
	}
	*o = Options(p)
	return nil
}
