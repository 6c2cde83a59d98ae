package player

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// position token layout, eg. "block=3". It travels as a URL fragment on
// the client, the leading "#" is tolerated here.
var tokenPattern = regexp.MustCompile(`^block=(\d+)$`)

// ParseToken decode a position token into a block index. Absent or
// malformed tokens decode to 0.
func ParseToken(token string) int {
	token = strings.TrimPrefix(token, "#")
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil {
		return 0
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		// digits only per the pattern, overflow is the one way here
		return 0
	}
	return index
}

// FormatToken encode a block index as a position token
func FormatToken(index int) string {
	return fmt.Sprintf("block=%d", index)
}
