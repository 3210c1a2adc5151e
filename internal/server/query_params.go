package server

import "strings"

// parseTriState reads the completadas filter: "si"/"1"/"true" filters to
// completed, "no"/"0"/"false" to pending, anything else applies no filter.
func parseTriState(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "si", "sí", "1", "true":
		v := true
		return &v
	case "no", "0", "false":
		v := false
		return &v
	default:
		return nil
	}
}

// checkboxChecked reports whether a checkbox-style form value was submitted.
func checkboxChecked(value string) bool {
	return strings.TrimSpace(value) != ""
}
