package stylesheet

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var sgrPattern = regexp.MustCompile("\x1b\\[([0-9;]*)m")

// newANSISheet returns a sheet that always emits basic ANSI codes into buf.
func newANSISheet(t *testing.T) (*Stylesheet, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return New(WithOutput(buf), WithColorProfile(termenv.ANSI)), buf
}

// sgrCodes collects every SGR parameter found in s, ignoring resets.
func sgrCodes(s string) map[string]bool {
	codes := make(map[string]bool)
	for _, match := range sgrPattern.FindAllStringSubmatch(s, -1) {
		for _, param := range strings.Split(match[1], ";") {
			if param == "" || param == "0" {
				continue
			}
			codes[param] = true
		}
	}
	return codes
}

func stripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
