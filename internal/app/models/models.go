package models

// College is an institution that publishes transfer pathways.
type College struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

// Degree is the target program a pathway leads to.
type Degree struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

// Pathway links a college to the degree its courses transfer into.
type Pathway struct {
	ID        int64  `json:"id" db:"id"`
	CollegeID int64  `json:"collegeId" db:"college_id"`
	DegreeID  int64  `json:"degreeId" db:"degree_id"`
	Name      string `json:"name" db:"name"`

	// Relations (populated when needed)
	Degree *Degree `json:"degree,omitempty"`
}
