package review

import "github.com/ahleksu/gail-prac-app/internal/scoring"

// AllDomains is the sentinel domain filter meaning "no filtering".
const AllDomains = "All domains"

// ReviewedQuestion is one finalized question with its correctness rederived
// from the stored answers. Incoming flags are never trusted; everything is
// recomputed, so a payload reconstructed from storage reviews identically to
// one handed over live.
type ReviewedQuestion struct {
	scoring.QuestionWithAnswer

	// Correct means the user's answer set equals the correct-answer set.
	Correct bool

	// Skipped means no answer was recorded.
	Skipped bool
}

// Project recomputes correctness and skip status for every record. Skipped
// iff the stored user answer is empty; correct iff not skipped and the user
// answer is set-equal to the correct-answer texts.
func Project(records []scoring.QuestionWithAnswer) []ReviewedQuestion {
	reviewed := make([]ReviewedQuestion, 0, len(records))
	for _, rec := range records {
		rq := ReviewedQuestion{QuestionWithAnswer: rec}
		rq.Skipped = len(rec.UserAnswer) == 0
		if !rq.Skipped {
			rq.Correct = matchesCorrectSet(rec)
		}
		reviewed = append(reviewed, rq)
	}
	return reviewed
}

// FilterDomain returns the subset of reviewed questions in the given domain.
// The AllDomains sentinel returns everything. The input is never mutated; a
// fresh slice is derived each call.
func FilterDomain(reviewed []ReviewedQuestion, domain string) []ReviewedQuestion {
	if domain == AllDomains {
		out := make([]ReviewedQuestion, len(reviewed))
		copy(out, reviewed)
		return out
	}
	var out []ReviewedQuestion
	for _, rq := range reviewed {
		if rq.Domain == domain {
			out = append(out, rq)
		}
	}
	return out
}

// Domains returns the distinct domain labels of the reviewed set, in first-
// appearance order, prefixed with the AllDomains sentinel.
func Domains(reviewed []ReviewedQuestion) []string {
	labels := []string{AllDomains}
	seen := make(map[string]bool)
	for _, rq := range reviewed {
		if !seen[rq.Domain] {
			seen[rq.Domain] = true
			labels = append(labels, rq.Domain)
		}
	}
	return labels
}

// Summaries rebuilds the per-domain summary map from a reviewed set, for
// hand-off back to a results view.
func Summaries(reviewed []ReviewedQuestion) map[string]scoring.DomainSummary {
	domains := make(map[string]scoring.DomainSummary)
	for _, rq := range reviewed {
		d := domains[rq.Domain]
		d.Total++
		switch {
		case rq.Skipped:
			d.Skipped++
		case rq.Correct:
			d.Correct++
		}
		domains[rq.Domain] = d
	}
	return domains
}

// matchesCorrectSet reports set equality between the user answer and the
// question's correct-answer texts, ignoring order.
func matchesCorrectSet(rec scoring.QuestionWithAnswer) bool {
	correct := rec.CorrectTexts()
	if len(correct) != len(rec.UserAnswer) {
		return false
	}
	chosen := make(map[string]bool, len(rec.UserAnswer))
	for _, s := range rec.UserAnswer {
		chosen[s] = true
	}
	if len(chosen) != len(correct) {
		return false
	}
	for _, s := range correct {
		if !chosen[s] {
			return false
		}
	}
	return true
}
