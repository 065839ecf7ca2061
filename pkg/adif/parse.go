package adif

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	eohMarker = "<EOH>"
	eorMarker = "<EOR>"
	byteOrder = "\uFEFF"
)

// Parse decodes ADIF text into a Document. It never fails; see the package
// documentation for how malformed input is handled.
func Parse(content string) *Document {
	content = strings.TrimPrefix(content, byteOrder)

	doc := &Document{Records: []Record{}}
	body := content
	if i := indexFold(content, eohMarker); i >= 0 {
		doc.Header = content[:i+len(eohMarker)]
		body = content[i+len(eohMarker):]
	}

	for _, segment := range splitFold(body, eorMarker) {
		segment = trimSpace(segment)
		if segment == "" {
			continue
		}
		if rec := scanFields(segment); rec.Len() > 0 {
			doc.Records = append(doc.Records, rec)
		}
	}

	return doc
}

// tag is one matched <NAME[:LENGTH[:TYPE]]> unit
type tag struct {
	name     string
	length   int // declared length, 0 when absent or not positive
	typeCode string
	end      int // offset just past the closing '>'
}

// scanFields walks a record segment with an explicit cursor. Each matched tag
// moves the cursor past its value, so text inside a length-delimited value
// is never taken for a tag.
func scanFields(s string) Record {
	var rec Record

	pos := 0
	for pos < len(s) {
		t, ok := nextTag(s, pos)
		if !ok {
			break
		}

		var value string
		if t.length > 0 {
			end := advanceRunes(s, t.end, t.length)
			value = s[t.end:end]
			pos = end
		} else if next := strings.IndexByte(s[t.end:], '<'); next < 0 {
			value = trimSpace(s[t.end:])
			pos = len(s)
		} else {
			value = trimSpace(s[t.end : t.end+next])
			pos = t.end + next
		}

		if value != "" {
			rec.Set(t.name, value)
		}
	}

	return rec
}

// nextTag finds the first tag starting at or after from
func nextTag(s string, from int) (tag, bool) {
	p := from
	for p < len(s) {
		k := strings.IndexByte(s[p:], '<')
		if k < 0 {
			return tag{}, false
		}
		p += k

		t, ok, resume := matchTag(s, p)
		if ok {
			return t, true
		}
		p = resume
	}
	return tag{}, false
}

// matchTag tries the tag grammar at s[p] == '<'. On failure it returns the
// offset where scanning can resume: every '<' between p and the end of the
// attempted name would fail the same way.
func matchTag(s string, p int) (tag, bool, int) {
	i := p + 1
	for i < len(s) && s[i] != ':' && s[i] != '>' {
		i++
	}
	if i >= len(s) {
		// no ':' or '>' left, so no later '<' can match either
		return tag{}, false, len(s)
	}
	if i == p+1 {
		return tag{}, false, p + 1
	}

	t := tag{name: strings.ToUpper(s[p+1 : i])}
	if s[i] == '>' {
		t.end = i + 1
		return t, true, 0
	}

	// s[i] == ':'
	j := i + 1
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j > i+1 && j < len(s) {
		switch s[j] {
		case '>':
			t.length = parseLength(s[i+1 : j])
			t.end = j + 1
			return t, true, 0
		case ':':
			if k := strings.IndexByte(s[j+1:], '>'); k > 0 {
				t.length = parseLength(s[i+1 : j])
				t.typeCode = s[j+1 : j+1+k]
				t.end = j + 1 + k + 1
				return t, true, 0
			}
		}
	}

	// No usable length: whatever follows the ':' up to '>' is a type code.
	k := strings.IndexByte(s[i+1:], '>')
	if k > 0 {
		t.typeCode = s[i+1 : i+1+k]
		t.end = i + 1 + k + 1
		return t, true, 0
	}
	if k < 0 {
		return tag{}, false, len(s)
	}
	return tag{}, false, i
}

func parseLength(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// only digits reach here, so the error is a range error
		return math.MaxInt
	}
	return n
}

// advanceRunes returns the offset n characters after start, clamped to the
// end of s
func advanceRunes(s string, start, n int) int {
	i := start
	for c := 0; c < n && i < len(s); c++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// indexFold returns the index of the first ASCII case-insensitive instance
// of marker in s, or -1
func indexFold(s, marker string) int {
	n := len(marker)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], marker) {
			return i
		}
	}
	return -1
}

// splitFold splits s around every ASCII case-insensitive instance of sep
func splitFold(s, sep string) []string {
	var parts []string
	for {
		i := indexFold(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'a' <= ca && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if 'a' <= cb && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
