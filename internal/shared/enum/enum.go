// Package enum maps small ordinal domains stored as integers to string labels.
package enum

// Codec translates between ordinals and labels. The ordinal of a label is its
// index in the list the codec was built from.
type Codec struct {
	labels []string
}

func New(labels ...string) Codec {
	return Codec{labels: append([]string(nil), labels...)}
}

// Label returns the label for ordinal, or false if the ordinal is unknown.
func (c Codec) Label(ordinal int) (string, bool) {
	if ordinal < 0 || ordinal >= len(c.labels) {
		return "", false
	}
	return c.labels[ordinal], true
}

// Ordinal returns the ordinal for label, or false if the label is unknown.
func (c Codec) Ordinal(label string) (int, bool) {
	for i, l := range c.labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

func (c Codec) Valid(ordinal int) bool {
	return ordinal >= 0 && ordinal < len(c.labels)
}

func (c Codec) Labels() []string {
	return append([]string(nil), c.labels...)
}
