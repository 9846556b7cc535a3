package catalog

import "testing"

func TestNormalizeLabel_Apostrophes(t *testing.T) {
	curly := "Google Cloud’s gen AI offerings"
	straight := "Google Cloud's gen AI offerings"

	if got := NormalizeLabel(curly); got != straight {
		t.Errorf("NormalizeLabel(%q) = %q, want %q", curly, got, straight)
	}
	if NormalizeLabel(straight) != straight {
		t.Errorf("NormalizeLabel should leave straight apostrophes alone")
	}
}

func TestSameDomain(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Fundamentals of gen AI", "fundamentals of gen ai", true},
		{"Google Cloud’s gen AI offerings", "Google Cloud's gen AI offerings", true},
		{"Google Cloud‘s gen AI offerings", "google cloud's gen ai offerings", true},
		{"Fundamentals of gen AI", "Techniques to improve gen AI model output", false},
	}
	for _, tt := range tests {
		if got := SameDomain(tt.a, tt.b); got != tt.want {
			t.Errorf("SameDomain(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAnswerIsCorrect_LegacyStatuses(t *testing.T) {
	if !(Answer{Status: "correct"}).IsCorrect() {
		t.Error(`status "correct" should be correct`)
	}
	// Both not-correct spellings in the data mean the same thing.
	if (Answer{Status: "incorrect"}).IsCorrect() {
		t.Error(`status "incorrect" should not be correct`)
	}
	if (Answer{Status: "wrong"}).IsCorrect() {
		t.Error(`status "wrong" should not be correct`)
	}
}

func TestCorrectTexts(t *testing.T) {
	q := Question{
		Type: TypeMultiple,
		Answers: []Answer{
			{Text: "A", Status: "correct"},
			{Text: "B", Status: "wrong"},
			{Text: "C", Status: "correct"},
		},
	}
	got := q.CorrectTexts()
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("CorrectTexts = %v, want [A C]", got)
	}
}

// Every single-type question in the embedded catalog must have exactly one
// correct answer; multiple-type questions at least one.
func TestEmbeddedCatalog_CorrectAnswerCounts(t *testing.T) {
	repo := NewRepository("", nil)
	questions, err := repo.Load(TopicAll)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	for _, q := range questions {
		correct := len(q.CorrectTexts())
		switch q.Type {
		case TypeSingle:
			if correct != 1 {
				t.Errorf("question %d (single) has %d correct answers, want 1", q.ID, correct)
			}
		case TypeMultiple:
			if correct < 1 {
				t.Errorf("question %d (multiple) has no correct answers", q.ID)
			}
		default:
			t.Errorf("question %d has unknown type %q", q.ID, q.Type)
		}
	}
}

// The topic table's literal labels must match the catalog's literal labels
// byte-for-byte after normalization; a label that matches nothing is a
// configuration bug.
func TestTopicLabels_MatchCatalogLabels(t *testing.T) {
	repo := NewRepository("", nil)
	questions, err := repo.Load(TopicAll)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	catalogLabels := make(map[string]bool)
	for _, q := range questions {
		catalogLabels[NormalizeLabel(q.Domain)] = true
	}

	topics := DefaultTopics()
	for _, key := range topics.Keys() {
		for _, label := range topics.Domains(key) {
			if !catalogLabels[NormalizeLabel(label)] {
				t.Errorf("topic %q label %q matches no catalog domain", key, label)
			}
		}
	}
}
