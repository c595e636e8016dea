// Package fallback serves the static offline course dataset used when the
// remote catalog is unreachable. The dataset is embedded into the binary
// and decoded lazily on first use; if the data is missing or malformed the
// repository serves an empty list rather than failing.
package fallback

import (
	_ "embed"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/daha-edu/coursegate/internal/domain/course"
)

//go:embed courses.json
var rawCourses []byte

// Repo holds the lazily decoded offline dataset. Read-only after the first
// Courses call, so concurrent use is safe.
type Repo struct {
	logger *zap.Logger

	once    sync.Once
	courses []course.Course
}

// New creates a fallback repository.
func New(logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{logger: logger}
}

// Courses returns the offline course records, decoding them on first call.
func (r *Repo) Courses() []course.Course {
	r.once.Do(func() {
		var courses []course.Course
		if err := json.Unmarshal(rawCourses, &courses); err != nil {
			r.logger.Warn("offline course dataset unavailable", zap.Error(err))
			return
		}
		r.courses = courses
		r.logger.Info("offline course dataset loaded", zap.Int("courses", len(courses)))
	})
	return r.courses
}
