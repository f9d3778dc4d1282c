// Package pattern compiles PAM and guide motifs into case-insensitive
// matchers. The only ambiguity code rewritten is N (any of A/C/G/T); the rest
// of the motif is taken as an RE2 expression, so callers may use classes,
// alternation and repetition for exclusion/inclusion motifs.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is wrapped by every Compile failure.
var ErrInvalidPattern = errors.New("invalid pattern")

// anyBase replaces N/n outside a bracket expression; inside one the bare
// members are spliced in instead, since RE2 has no nested classes.
const (
	anyBase      = "[ACGTacgt]"
	anyBaseInSet = "ACGTacgt"
)

// Pattern is a compiled motif. It is safe for concurrent use.
type Pattern struct {
	src string
	re  *regexp.Regexp
}

// Compile rewrites N/n to the four bases and compiles p case-insensitively.
// An N inside a bracket expression widens that expression, so [NT]GG is any
// base followed by GG and [^N] is any non-base.
func Compile(p string) (*Pattern, error) {
	re, err := regexp.Compile("(?i)" + expandAnyBase(p))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, p, err)
	}
	return &Pattern{src: p, re: re}, nil
}

// expandAnyBase rewrites every N/n that stands for a base. Escapes, Unicode
// class names, POSIX class names and group names are copied verbatim.
func expandAnyBase(p string) string {
	var b strings.Builder
	b.Grow(len(p) + 16)
	inSet := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\\':
			j := escapeEnd(p, i)
			b.WriteString(p[i:j])
			i = j - 1
		case inSet && c == '[' && strings.HasPrefix(p[i:], "[:"):
			end := strings.Index(p[i+2:], ":]")
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			j := i + 2 + end + 2
			b.WriteString(p[i:j])
			i = j - 1
		case inSet && c == ']':
			inSet = false
			b.WriteByte(c)
		case !inSet && c == '[':
			inSet = true
			b.WriteByte(c)
			// a leading ^ and a leading ] belong to the set body
			if i+1 < len(p) && p[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(p) && p[i+1] == ']' {
				b.WriteByte(']')
				i++
			}
		case !inSet && (strings.HasPrefix(p[i:], "(?P<") || strings.HasPrefix(p[i:], "(?<")):
			end := strings.IndexByte(p[i:], '>')
			if end < 0 {
				b.WriteString(p[i:])
				i = len(p)
				continue
			}
			b.WriteString(p[i : i+end+1])
			i += end
		case c == 'N' || c == 'n':
			if inSet {
				b.WriteString(anyBaseInSet)
			} else {
				b.WriteString(anyBase)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeEnd returns the index just past the escape sequence starting at i.
func escapeEnd(p string, i int) int {
	if i+1 >= len(p) {
		return len(p)
	}
	switch p[i+1] {
	case 'p', 'P', 'x':
		if i+2 < len(p) && p[i+2] == '{' {
			if end := strings.IndexByte(p[i+2:], '}'); end >= 0 {
				return i + 2 + end + 1
			}
			return len(p)
		}
		if p[i+1] == 'x' {
			return min(i+4, len(p))
		}
		return min(i+3, len(p))
	}
	return i + 2
}

// CompileOptional is Compile for motifs where "" means "not configured".
// It returns (nil, nil) for the empty string.
func CompileOptional(p string) (*Pattern, error) {
	if p == "" {
		return nil, nil
	}
	return Compile(p)
}

// MustCompile is like Compile but panics on error. Intended for tests and
// package-level defaults.
func MustCompile(p string) *Pattern {
	pt, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return pt
}

// String returns the motif as given to Compile.
func (p *Pattern) String() string { return p.src }

// Match reports whether the motif occurs anywhere in s.
func (p *Pattern) Match(s string) bool { return p.re.MatchString(s) }

// FindAll returns the [start,end) spans of all non-overlapping matches in s,
// leftmost first.
func (p *Pattern) FindAll(s string) [][2]int {
	locs := p.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([][2]int, 0, len(locs))
	for _, l := range locs {
		if l[1] == l[0] {
			continue // empty matches anchor nothing
		}
		out = append(out, [2]int{l[0], l[1]})
	}
	return out
}
