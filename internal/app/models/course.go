package models

import "strings"

// Course is a catalog course. ID carries a two character domain prefix.
type Course struct {
	ID           string `json:"id" db:"id"`
	Code         string `json:"code" db:"code"`
	Name         string `json:"name" db:"name"`
	Units        int    `json:"units" db:"units"`
	TermsOffered string `json:"termsOffered" db:"terms_offered"` // comma-joined term names
}

// Terms splits TermsOffered into trimmed, non-empty term names.
func (c *Course) Terms() []string {
	var terms []string
	for _, part := range strings.Split(c.TermsOffered, ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}
