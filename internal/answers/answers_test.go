package answers

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/questionnaire"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeAnswers(t, `participant:
  name: Jane Smith
  business: ABC Cleaning Services
  email: jane@example.com
answers:
  Q1: true
  Q2: false
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Participant.Name != "Jane Smith" {
		t.Errorf("Name = %q", f.Participant.Name)
	}
	if f.Participant.Email != "jane@example.com" {
		t.Errorf("Email = %q", f.Participant.Email)
	}
	want := map[string]bool{"Q1": true, "Q2": false}
	if !reflect.DeepEqual(map[string]bool(f.Answers), want) {
		t.Errorf("Answers = %v, want %v", f.Answers, want)
	}
}

func TestLoadPartial(t *testing.T) {
	path := writeAnswers(t, `participant:
  name: Jane
  business: ABC
  email: jane@example.com
answers:
  Q1: true
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(f.Answers) != 1 {
		t.Errorf("expected 1 answer, got %d", len(f.Answers))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeAnswers(t, "answers: [}")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestUnknown(t *testing.T) {
	q := &questionnaire.Questionnaire{
		Pillars:   []questionnaire.Pillar{{ID: "p1", Name: "One"}},
		Questions: []questionnaire.Question{{ID: "Q1", Pillar: "p1", Text: "One?"}},
	}
	f := &File{Answers: map[string]bool{"Q1": true, "Q9": false, "Q5": true}}

	got := f.Unknown(q)
	want := []string{"Q5", "Q9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unknown() = %v, want %v", got, want)
	}

	f = &File{Answers: map[string]bool{"Q1": true}}
	if got := f.Unknown(q); len(got) != 0 {
		t.Errorf("expected no unknown IDs, got %v", got)
	}
}
