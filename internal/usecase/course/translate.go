package course

import (
	"github.com/daha-edu/coursegate/internal/catalog"
	"github.com/daha-edu/coursegate/internal/domain/filter"
)

// Translate converts a filter bag into single-valued catalog query
// parameters. The remote API accepts only one value per dimension, so each
// multi-select dimension is narrowed to one representative value: the first
// bag member found in the lookup table, walking the table's canonical order
// so the choice does not depend on map iteration order. Members unknown to
// the tables are skipped, never an error. Correctness for the full
// multi-valued bag is restored later by Evaluate.
func Translate(bag filter.Bag) filter.Params {
	var params filter.Params

	if len(bag.Subjects) > 0 {
		for _, subject := range catalog.Subjects() {
			if _, ok := bag.Subjects[subject]; !ok {
				continue
			}
			if id, ok := catalog.CategoryID(subject); ok {
				params.CategoryID = id
				break
			}
		}
	}

	if len(bag.Difficulties) > 0 {
		for _, difficulty := range catalog.Difficulties() {
			if _, ok := bag.Difficulties[difficulty]; !ok {
				continue
			}
			if code, ok := catalog.LevelCode(difficulty); ok {
				params.Level = code
				break
			}
		}
	}

	if len(bag.Grades) > 0 {
		grades := bag.NormalizedGrades()
		for _, grade := range catalog.Grades() {
			if _, ok := grades[grade]; !ok {
				continue
			}
			if id, ok := catalog.GradeID(grade); ok {
				params.GradeID = id
				break
			}
		}
	}

	return params
}
