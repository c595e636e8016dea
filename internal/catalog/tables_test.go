package catalog

import "testing"

func TestCategoryID(t *testing.T) {
	id, ok := CategoryID("Программирование")
	if !ok || id != 2 {
		t.Errorf("CategoryID(Программирование) = %d, %v", id, ok)
	}

	if _, ok := CategoryID("Астрономия"); ok {
		t.Error("unknown subject should not resolve")
	}
}

func TestDifficultyRoundTrip(t *testing.T) {
	for _, label := range Difficulties() {
		code, ok := LevelCode(label)
		if !ok {
			t.Fatalf("no level code for %q", label)
		}
		if got := DifficultyLabel(code); got != label {
			t.Errorf("round trip %q -> %q -> %q", label, code, got)
		}
	}
}

func TestDifficultyLabel_UnknownFallsBackToRaw(t *testing.T) {
	if got := DifficultyLabel("EXPERT"); got != "EXPERT" {
		t.Errorf("unknown level should pass through, got %q", got)
	}
}

func TestGradeID(t *testing.T) {
	for i, grade := range Grades() {
		id, ok := GradeID(grade)
		if !ok {
			t.Fatalf("no grade id for %d", grade)
		}
		if id != i+1 {
			t.Errorf("GradeID(%d) = %d, want %d", grade, id, i+1)
		}
	}

	if _, ok := GradeID(5); ok {
		t.Error("grade 5 should not resolve")
	}
}

func TestCanonicalOrderCoversTables(t *testing.T) {
	for _, subject := range Subjects() {
		if _, ok := CategoryID(subject); !ok {
			t.Errorf("ordered subject %q missing from lookup table", subject)
		}
	}
	for _, difficulty := range Difficulties() {
		if _, ok := LevelCode(difficulty); !ok {
			t.Errorf("ordered difficulty %q missing from lookup table", difficulty)
		}
	}
	for _, grade := range Grades() {
		if _, ok := GradeID(grade); !ok {
			t.Errorf("ordered grade %d missing from lookup table", grade)
		}
	}
}
