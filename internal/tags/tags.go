// Package tags validates user-supplied SAM tag names into tag identifiers.
package tags

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// InvalidNameError reports the first tag name whose length is not exactly
// two bytes.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("tag name must be exactly 2 characters: %q", e.Name)
}

// Validate converts tag names into SAM tag identifiers, preserving order and
// duplicates. It fails on the first name that is not exactly two bytes long;
// beyond length, any byte values are accepted.
func Validate(names []string) ([]sam.Tag, error) {
	out := make([]sam.Tag, 0, len(names))
	for _, name := range names {
		if len(name) != 2 {
			return nil, &InvalidNameError{Name: name}
		}
		out = append(out, sam.Tag{name[0], name[1]})
	}
	return out, nil
}
