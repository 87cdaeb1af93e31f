package layout

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Format renders decoded values on a single line, strings quoted and byte
// slices in hex
func Format(vals []interface{}) string {
	parts := make([]string, len(vals))

	for i, v := range vals {
		switch x := v.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", x)
		case []byte:
			parts[i] = hex.EncodeToString(x)
		default:
			parts[i] = fmt.Sprint(x)
		}
	}

	return strings.Join(parts, " ")
}
