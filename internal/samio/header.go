// internal/samio/header.go
package samio

import (
	"fmt"
	"strings"

	"github.com/biogo/hts/sam"
)

// StampProgram clones h and appends a @PG record identifying this
// invocation (ID, PN, VN and the reconstructed command line).
func StampProgram(h *sam.Header, name, version string, argv []string) (*sam.Header, error) {
	out := h.Clone()
	cl := strings.Join(append([]string{name}, argv...), " ")
	if err := out.AddProgram(sam.NewProgram(name, name, cl, "", version)); err != nil {
		return nil, fmt.Errorf("samio: stamp program record: %w", err)
	}
	return out, nil
}
