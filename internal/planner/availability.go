package planner

import (
	"context"
	"strings"
)

// FormatAvailability joins terms in AllTerms order, dropping unknown names.
func FormatAvailability(terms []string) string {
	have := make(map[string]bool, len(terms))
	for _, t := range terms {
		have[strings.ToLower(strings.TrimSpace(t))] = true
	}
	out := make([]string, 0, len(AllTerms))
	for _, t := range AllTerms {
		if have[strings.ToLower(t)] {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

// ResolveAvailability returns the union of terms any of the tokens is
// offered in. An AnyInPrefix token short-circuits to every term without
// touching the catalog.
func ResolveAvailability(ctx context.Context, catalog Catalog, tokens []Token) (string, error) {
	for _, t := range tokens {
		if t.Kind == AnyInPrefix {
			return FormatAvailability(AllTerms), nil
		}
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, t := range tokens {
		expanded, err := Resolve(ctx, catalog, t)
		if err != nil {
			return "", storeErr("match pattern "+t.Raw, err)
		}
		for _, id := range expanded {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", nil
	}

	offered, err := catalog.OfferedTerms(ctx, ids)
	if err != nil {
		return "", storeErr("offered terms", err)
	}
	var union []string
	for _, id := range ids {
		union = append(union, offered[id]...)
	}
	return FormatAvailability(union), nil
}
