// Package filter defines the user-facing search criteria (the filter bag)
// and the single-valued query parameters derived from it.
package filter

import "strconv"

// Bag holds user-selected search criteria, one optional set of values per
// dimension. A nil or empty set means the dimension is unconstrained.
// Grade members are kept as raw strings ("9") since they arrive from
// keyboards and query strings; NormalizedGrades converts them to integers.
//
// A Bag is never mutated by translation or evaluation.
type Bag struct {
	Subjects     map[string]struct{}
	Difficulties map[string]struct{}
	Grades       map[string]struct{}
}

// NewBag creates an empty filter bag.
func NewBag() Bag {
	return Bag{
		Subjects:     make(map[string]struct{}),
		Difficulties: make(map[string]struct{}),
		Grades:       make(map[string]struct{}),
	}
}

// AddSubject adds a subject to the bag.
func (b Bag) AddSubject(subject string) {
	b.Subjects[subject] = struct{}{}
}

// AddDifficulty adds a human-readable difficulty label to the bag.
func (b Bag) AddDifficulty(difficulty string) {
	b.Difficulties[difficulty] = struct{}{}
}

// AddGrade adds a grade given as its string form ("7".."11").
func (b Bag) AddGrade(grade string) {
	b.Grades[grade] = struct{}{}
}

// AddGradeInt adds a grade given as an integer.
func (b Bag) AddGradeInt(grade int) {
	b.Grades[strconv.Itoa(grade)] = struct{}{}
}

// IsEmpty reports whether no dimension holds any value.
func (b Bag) IsEmpty() bool {
	return len(b.Subjects) == 0 && len(b.Difficulties) == 0 && len(b.Grades) == 0
}

// NormalizedGrades returns the grade members converted to integers.
// Non-numeric members are skipped; "9" and 9 collapse to the same value.
func (b Bag) NormalizedGrades() map[int]struct{} {
	if len(b.Grades) == 0 {
		return nil
	}
	grades := make(map[int]struct{}, len(b.Grades))
	for raw := range b.Grades {
		if g, ok := NormalizeGrade(raw); ok {
			grades[g] = struct{}{}
		}
	}
	return grades
}

// NormalizeGrade parses a raw grade value into an integer.
func NormalizeGrade(raw string) (int, bool) {
	g, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return g, true
}

// Params are the server-side catalog query parameters derived from a Bag.
// The remote API accepts at most one value per dimension, so each field
// holds a single representative value; the zero value means the dimension
// is not constrained server-side.
type Params struct {
	CategoryID int
	Level      string
	GradeID    int
}

// IsEmpty reports whether no dimension is constrained.
func (p Params) IsEmpty() bool {
	return p.CategoryID == 0 && p.Level == "" && p.GradeID == 0
}
