package render

import (
	"encoding/json"

	"github.com/tugapse/cpu-temp/internal/snapshot"
)

// Export serializes a snapshot as an indented JSON document mirroring its
// fields: timestamp, overall_cpu_temp, cores_temp, and — only when set —
// error and available_sensor_keys.
func Export(s snapshot.Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
