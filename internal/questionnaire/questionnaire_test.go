package questionnaire

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	q, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	if len(q.Pillars) != 5 {
		t.Errorf("expected 5 pillars, got %d", len(q.Pillars))
	}
	if len(q.Questions) != 20 {
		t.Errorf("expected 20 questions, got %d", len(q.Questions))
	}
	if !strings.HasPrefix(q.Hash, "sha256:") {
		t.Errorf("expected sha256-prefixed hash, got %q", q.Hash)
	}
	if q.FilePath != BuiltinName {
		t.Errorf("expected file path %q, got %q", BuiltinName, q.FilePath)
	}
	if errs := Validate(q); len(errs) > 0 {
		t.Errorf("builtin catalogue failed validation: %v", errs)
	}
}

func TestBuiltinPillarOrder(t *testing.T) {
	q, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	want := []string{"Identify", "Protect", "Detect & Respond", "Recover", "Governance & People"}
	for i, name := range want {
		if q.Pillars[i].Name != name {
			t.Errorf("pillar %d: got %q, want %q", i, q.Pillars[i].Name, name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	content := `version: 1
pillars:
  - id: p1
    name: Pillar One
questions:
  - id: Q1
    pillar: p1
    text: Is the door locked?
    safe_answer: true
    weight: 2
    risk_points: 2
    recommendation: Lock the door.
  - id: Q2
    pillar: p1
    text: Is the window open?
    safe_answer: false
    weight: 1
    risk_points: 1
    recommendation: Close the window.
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	q, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if q.FilePath != path {
		t.Errorf("FilePath = %q, want %q", q.FilePath, path)
	}
	if len(q.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(q.Questions))
	}
	if !q.Questions[0].SafeAnswerValue() {
		t.Error("Q1 safe answer should be yes")
	}
	if q.Questions[1].SafeAnswerValue() {
		t.Error("Q2 safe answer should be no")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pillars: [}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestSafeAnswerValueDefault(t *testing.T) {
	q := Question{ID: "Q1"}
	if !q.SafeAnswerValue() {
		t.Error("omitted safe_answer should default to yes")
	}
	no := false
	q.SafeAnswer = &no
	if q.SafeAnswerValue() {
		t.Error("explicit safe_answer no should be honoured")
	}
}

func TestPillarByID(t *testing.T) {
	q := &Questionnaire{Pillars: []Pillar{{ID: "p1", Name: "One"}}}
	if p, ok := q.PillarByID("p1"); !ok || p.Name != "One" {
		t.Errorf("PillarByID(p1) = %v, %v", p, ok)
	}
	if _, ok := q.PillarByID("p2"); ok {
		t.Error("expected miss for unknown pillar id")
	}
}
