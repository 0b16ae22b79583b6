package router

import (
	"fmt"
	"net/url"
	"strings"
)

// segment is one slash-separated piece of a route pattern
type segment struct {
	literal string // lowercased; empty for parameters
	param   string // parameter name; empty for literals
}

func (s segment) isParam() bool { return s.param != "" }

// pattern is a parsed route pattern such as /trucks/:id
type pattern struct {
	raw      string
	segments []segment
}

// parsePattern validates and splits a route pattern. Patterns must be
// absolute, may not contain the wildcard and may not repeat a parameter name.
func parsePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	seen := make(map[string]bool)
	var segs []segment
	for _, part := range splitPath(raw) {
		switch {
		case part == "*" || strings.Contains(part, "*"):
			return pattern{}, fmt.Errorf("%w: %q uses a wildcard, use the not-found slot instead", ErrInvalidPattern, raw)
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return pattern{}, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, raw)
			}
			if seen[name] {
				return pattern{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, raw, name)
			}
			seen[name] = true
			segs = append(segs, segment{param: name})
		default:
			segs = append(segs, segment{literal: strings.ToLower(part)})
		}
	}

	return pattern{raw: raw, segments: segs}, nil
}

// shape returns the pattern with every parameter collapsed to ":", so two
// patterns with the same shape match exactly the same paths.
func (p pattern) shape() string {
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if s.isParam() {
			b.WriteByte(':')
		} else {
			b.WriteString(s.literal)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// match reports whether the path segments fit the pattern and extracts
// parameter values.
func (p pattern) match(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params Params
	for i, s := range p.segments {
		if s.isParam() {
			if params == nil {
				params = make(Params)
			}
			params[s.param] = unescape(parts[i])
			continue
		}
		if strings.ToLower(unescape(parts[i])) != s.literal {
			return nil, false
		}
	}
	if params == nil {
		params = Params{}
	}
	return params, true
}

// compareSpecificity orders patterns so that, at the first segment where
// they differ in kind, the literal one comes first. Patterns of different
// length never match the same path; they are ordered by length only to keep
// the ordering total.
func compareSpecificity(a, b pattern) int {
	if len(a.segments) != len(b.segments) {
		if len(a.segments) < len(b.segments) {
			return -1
		}
		return 1
	}
	for i := range a.segments {
		ap, bp := a.segments[i].isParam(), b.segments[i].isParam()
		if ap != bp {
			if bp {
				return -1
			}
			return 1
		}
	}
	return 0
}

// overlaps reports whether some path could match both patterns
func overlaps(a, b pattern) bool {
	if len(a.segments) != len(b.segments) {
		return false
	}
	for i := range a.segments {
		as, bs := a.segments[i], b.segments[i]
		if !as.isParam() && !bs.isParam() && as.literal != bs.literal {
			return false
		}
	}
	return true
}

// NormalizePath strips the query string and fragment, collapses duplicate
// and trailing slashes and guarantees a leading slash.
func NormalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := splitPath(path)
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func unescape(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}

func escapeSegment(s string) string {
	return url.PathEscape(s)
}
