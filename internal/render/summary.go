package render

import (
	"fmt"
	"strings"

	"github.com/tugapse/cpu-temp/internal/snapshot"
)

// Summary renders a snapshot as one pipe-delimited line:
// "OV: 45.0°C | C1: 72.3°C | C2: 81.9°C". Error snapshots are the
// driver's business; Summary is never called for them.
func Summary(s snapshot.Snapshot) string {
	parts := make([]string, 0, len(s.Cores)+1)

	if s.Overall != nil {
		parts = append(parts, fmt.Sprintf("OV: %.1f°C", s.Overall.Current))
	} else {
		parts = append(parts, "OV: N/A")
	}

	for _, c := range s.Cores {
		label := strings.Replace(c.Label, "Core ", "C", 1)
		parts = append(parts, fmt.Sprintf("%s: %.1f°C", label, c.Current))
	}

	return strings.Join(parts, " | ")
}
