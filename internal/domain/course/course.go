// Package course defines the catalog entry passed through the filtering
// pipeline. Records are treated as read-only data: nothing downstream
// mutates them.
package course

// Course is a single catalog entry as returned by the remote API
// (and mirrored by the offline dataset). Difficulty carries the
// API-coded level (BEGINNER, INTERMEDIATE, ADVANCED), not the
// human-readable label.
type Course struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Subjects    []string `json:"subjects"`
	Difficulty  string   `json:"difficulty"`
	Grades      []int    `json:"grade"`
	URL         string   `json:"url,omitempty"`
}

// HasSubject reports whether the course covers the given subject.
func (c Course) HasSubject(subject string) bool {
	for _, s := range c.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// HasAnyGrade reports whether any of the course grades is in the given set.
func (c Course) HasAnyGrade(grades map[int]struct{}) bool {
	for _, g := range c.Grades {
		if _, ok := grades[g]; ok {
			return true
		}
	}
	return false
}
