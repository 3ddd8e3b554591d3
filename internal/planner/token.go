package planner

import (
	"context"
	"strings"
)

// AnySuffix is the placeholder suffix matching every course of a prefix.
const AnySuffix = "ANY"

// PrefixLength is the length of the domain prefix of a course identifier.
const PrefixLength = 2

// TokenKind tells how a group member token denotes courses.
type TokenKind int

const (
	// Concrete denotes exactly one course.
	Concrete TokenKind = iota
	// AnyInPrefix denotes every course sharing the prefix.
	AnyInPrefix
	// PatternInPrefix denotes courses sharing the prefix whose code starts with the pattern.
	PatternInPrefix
)

func (k TokenKind) String() string {
	switch k {
	case Concrete:
		return "concrete"
	case AnyInPrefix:
		return "any"
	case PatternInPrefix:
		return "pattern"
	default:
		return "unknown"
	}
}

// Token is a parsed group member identifier.
type Token struct {
	Raw     string
	Kind    TokenKind
	Prefix  string
	Pattern string
}

// ParseToken classifies a raw member identifier. Identifiers shorter than
// or equal to the prefix are treated as concrete.
func ParseToken(raw string) Token {
	raw = strings.TrimSpace(raw)
	if len(raw) <= PrefixLength {
		return Token{Raw: raw, Kind: Concrete, Prefix: raw}
	}

	prefix, suffix := raw[:PrefixLength], raw[PrefixLength:]
	if isNumeric(strings.TrimLeft(suffix, "0")) {
		return Token{Raw: raw, Kind: Concrete, Prefix: prefix}
	}
	if suffix == AnySuffix {
		return Token{Raw: raw, Kind: AnyInPrefix, Prefix: prefix}
	}
	return Token{Raw: raw, Kind: PatternInPrefix, Prefix: prefix, Pattern: suffix}
}

// isNumeric reports whether s holds only ASCII digits. The empty string is
// numeric so that an all-zero suffix stays concrete.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsWildcard reports whether the token denotes more than one course.
func (t Token) IsWildcard() bool {
	return t.Kind != Concrete
}

// Matches reports whether a catalog course falls under the token.
func (t Token) Matches(course CourseRef) bool {
	switch t.Kind {
	case Concrete:
		return course.ID == t.Raw
	case AnyInPrefix:
		return strings.HasPrefix(course.ID, t.Prefix)
	default:
		return strings.HasPrefix(course.ID, t.Prefix) &&
			strings.HasPrefix(strings.ToUpper(course.Code), strings.ToUpper(t.Pattern))
	}
}

// Display renders the token for messages.
func (t Token) Display() string {
	switch t.Kind {
	case AnyInPrefix:
		return "any " + t.Prefix + " course"
	case PatternInPrefix:
		return t.Pattern + "* (" + t.Prefix + ")"
	default:
		return t.Raw
	}
}

// Resolve expands a token into concrete course identifiers. Concrete tokens
// resolve to themselves and AnyInPrefix tokens resolve to nil without a
// catalog lookup.
func Resolve(ctx context.Context, catalog Catalog, t Token) ([]string, error) {
	switch t.Kind {
	case Concrete:
		return []string{t.Raw}, nil
	case AnyInPrefix:
		return nil, nil
	}

	courses, err := catalog.MatchPattern(ctx, t.Prefix, t.Pattern)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids, nil
}
