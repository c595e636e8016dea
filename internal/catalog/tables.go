// Package catalog holds the static lookup tables mapping human-readable
// filter values to the codes the remote course API understands. The tables
// are closed: the keys are fixed at build time, unknown values are silently
// ignored by lookups, and nothing is mutated after package initialization.
package catalog

// Таблицы соответствия значений фильтров бота параметрам API.
var (
	subjectToCategory = map[string]int{
		"Искусственный интеллект":     1,
		"Программирование":            2,
		"Информационная безопасность": 3,
		"Робототехника":               4,
		"Предпринимательство":         5,
		"Финансовая грамотность":      6,
		"Наука":                       7,
	}

	difficultyToLevel = map[string]string{
		"Начальный":   "BEGINNER",
		"Средний":     "INTERMEDIATE",
		"Продвинутый": "ADVANCED",
	}

	levelToDifficulty = map[string]string{
		"BEGINNER":     "Начальный",
		"INTERMEDIATE": "Средний",
		"ADVANCED":     "Продвинутый",
	}

	gradeToID = map[int]int{
		7:  1,
		8:  2,
		9:  3,
		10: 4,
		11: 5,
	}
)

// Canonical iteration order for the "first match wins" translation rule.
// Map iteration order is unspecified in Go, so translation walks these
// slices instead to stay deterministic.
var (
	subjectOrder = []string{
		"Искусственный интеллект",
		"Программирование",
		"Информационная безопасность",
		"Робототехника",
		"Предпринимательство",
		"Финансовая грамотность",
		"Наука",
	}

	difficultyOrder = []string{"Начальный", "Средний", "Продвинутый"}

	gradeOrder = []int{7, 8, 9, 10, 11}
)

// CategoryID maps a subject name to its API category id.
func CategoryID(subject string) (int, bool) {
	id, ok := subjectToCategory[subject]
	return id, ok
}

// LevelCode maps a difficulty label to its API level code.
func LevelCode(difficulty string) (string, bool) {
	code, ok := difficultyToLevel[difficulty]
	return code, ok
}

// DifficultyLabel maps an API level code back to the bot-facing label.
// Unknown codes fall back to the raw API value.
func DifficultyLabel(level string) string {
	if label, ok := levelToDifficulty[level]; ok {
		return label
	}
	return level
}

// GradeID maps a school grade to its API grade id.
func GradeID(grade int) (int, bool) {
	id, ok := gradeToID[grade]
	return id, ok
}

// Subjects returns the known subject names in canonical order.
func Subjects() []string {
	return subjectOrder
}

// Difficulties returns the known difficulty labels in canonical order.
func Difficulties() []string {
	return difficultyOrder
}

// Grades returns the known grades in ascending order.
func Grades() []int {
	return gradeOrder
}
