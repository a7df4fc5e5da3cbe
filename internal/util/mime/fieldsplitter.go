package mime

import "regexp"

var paramSeparator = regexp.MustCompile("\\s*;\\s*")

// SplitParameters will take a media type such as "text/plain; charset=utf-8"
// and return the bare type and its parameter list (without potential blanks
// in between).
func SplitParameters(s string) (string, []string) {
	parts := paramSeparator.Split(s, -1)
	return parts[0], parts[1:]
}
