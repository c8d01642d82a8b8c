package utils

import "strings"

// StripDataURI turns "data:image/png;base64,AAAA" into "AAAA". Plain base64
// input is returned trimmed.
func StripDataURI(b64 string) string {
	b64 = strings.TrimSpace(b64)
	if !strings.HasPrefix(b64, "data:") {
		return b64
	}
	if i := strings.Index(b64, ","); i >= 0 {
		return b64[i+1:]
	}
	return b64
}
