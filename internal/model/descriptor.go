package model

// DefaultSequence is used when a descriptor file has no ":"-prefixed line.
const DefaultSequence = ":user |Tab :password |Return"

// Descriptor is one parsed <name>.autotype file paired with its credential file.
type Descriptor struct {
	// Path identifies the paired credential file (absolute filesystem path).
	Path string `yaml:"path" json:"path"`

	// Patterns are the literal window-title substrings, sorted and deduplicated.
	// A descriptor is never built with an empty pattern set.
	Patterns []string `yaml:"patterns" json:"patterns"`

	// Sequence is the first ":"-prefixed line of the file, or DefaultSequence.
	Sequence string `yaml:"sequence" json:"sequence"`

	// Matched is set by the matcher. It is not part of the descriptor's identity.
	Matched bool `yaml:"matched,omitempty" json:"matched,omitempty"`
}
