package course

import (
	"github.com/daha-edu/coursegate/internal/catalog"
	"github.com/daha-edu/coursegate/internal/domain/course"
	"github.com/daha-edu/coursegate/internal/domain/filter"
)

// Evaluate re-applies the full filter bag to a candidate list. This is the
// single source of truth for filter correctness: the server-side parameters
// built by Translate carry at most one value per dimension, so every
// candidate, whether it came from the API or from the fallback dataset,
// is re-checked here against all selected values. Pure function; input
// order is preserved and candidates are never mutated.
func Evaluate(candidates []course.Course, bag filter.Bag) []course.Course {
	if len(candidates) == 0 {
		return []course.Course{}
	}

	grades := bag.NormalizedGrades()

	results := make([]course.Course, 0, len(candidates))
	for _, c := range candidates {
		if !matchSubjects(c, bag) {
			continue
		}
		if !matchDifficulty(c, bag) {
			continue
		}
		if !matchGrades(c, grades, bag) {
			continue
		}
		results = append(results, c)
	}
	return results
}

// matchSubjects passes when any selected subject appears in the course's
// subject list. An empty selection matches everything.
func matchSubjects(c course.Course, bag filter.Bag) bool {
	if len(bag.Subjects) == 0 {
		return true
	}
	for subject := range bag.Subjects {
		if c.HasSubject(subject) {
			return true
		}
	}
	return false
}

// matchDifficulty translates the course's API-coded level back to the
// bot-facing label and checks membership in the selected set. Codes without
// an inverse mapping are compared as-is.
func matchDifficulty(c course.Course, bag filter.Bag) bool {
	if len(bag.Difficulties) == 0 {
		return true
	}
	label := catalog.DifficultyLabel(c.Difficulty)
	_, ok := bag.Difficulties[label]
	return ok
}

// matchGrades passes when the course's grade list intersects the normalized
// user selection.
func matchGrades(c course.Course, grades map[int]struct{}, bag filter.Bag) bool {
	if len(bag.Grades) == 0 {
		return true
	}
	return c.HasAnyGrade(grades)
}
