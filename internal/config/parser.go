package config

import "strings"

// parseLine splits one configuration line into a key and a value.
// ok is false for blank lines, comments, lines without '=', and lines whose
// key or value ends up empty.
func parseLine(line string) (key, value string, ok bool) {
	pos := 0
	n := len(line)

	for pos < n && isBlank(line[pos]) {
		pos++
	}
	if pos == n || line[pos] == '#' {
		return "", "", false
	}

	start := pos
	for pos < n && line[pos] != '=' && !isBlank(line[pos]) {
		pos++
	}
	key = line[start:pos]

	eq := strings.IndexByte(line[pos:], '=')
	if eq < 0 {
		return "", "", false
	}
	pos += eq + 1

	for pos < n && isBlank(line[pos]) {
		pos++
	}

	var b strings.Builder
	b.Grow(n - pos)
	quoted := false
	lastSpace := false
scan:
	for ; pos < n; pos++ {
		c := line[pos]
		switch {
		case c == '"':
			quoted = !quoted
		case !quoted && c == '#':
			break scan
		case !quoted && isBlank(c):
			// Unquoted whitespace runs collapse to one space.
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteByte(c)
			lastSpace = c == ' '
		}
	}

	value = strings.TrimRight(b.String(), " ")
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
