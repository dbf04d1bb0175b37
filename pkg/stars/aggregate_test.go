package stars

import (
	"testing"
)

func strptr(s string) *string { return &s }

func langRecord(name, lang string) Record {
	r := Record{Name: name, Topics: []string{}}
	if lang != "" {
		r.Language = strptr(lang)
	}
	return r
}

func TestLanguageHistogram(t *testing.T) {
	records := []Record{
		langRecord("a/a", "Go"),
		langRecord("b/b", "Go"),
		langRecord("c/c", "Rust"),
		langRecord("d/d", ""), // null language, excluded
	}

	hist := LanguageHistogram(records)
	if len(hist) != 2 {
		t.Fatalf("got %d entries, want 2", len(hist))
	}
	if hist[0].Value != "Go" || hist[0].Count != 2 {
		t.Errorf("hist[0] = %+v, want {Go 2}", hist[0])
	}
	if hist[1].Value != "Rust" || hist[1].Count != 1 {
		t.Errorf("hist[1] = %+v, want {Rust 1}", hist[1])
	}

	// Sum of counts equals the number of records with a non-null language.
	sum := 0
	for _, e := range hist {
		sum += e.Count
	}
	if sum != 3 {
		t.Errorf("histogram sum = %d, want 3", sum)
	}
}

func TestHistogramTieOrder(t *testing.T) {
	// Equal counts must keep first-seen order, not map iteration order.
	records := []Record{
		langRecord("a/a", "Zig"),
		langRecord("b/b", "Ada"),
		langRecord("c/c", "Zig"),
		langRecord("d/d", "Ada"),
		langRecord("e/e", "C"),
	}

	hist := LanguageHistogram(records)
	want := []HistogramEntry{{"Zig", 2}, {"Ada", 2}, {"C", 1}}
	for i, w := range want {
		if hist[i] != w {
			t.Errorf("hist[%d] = %+v, want %+v", i, hist[i], w)
		}
	}
}

func TestTopicHistogram(t *testing.T) {
	records := []Record{
		{Name: "a/a", Topics: []string{"cli", "go"}},
		{Name: "b/b", Topics: []string{"go"}},
		{Name: "c/c", Topics: []string{}},
	}

	hist := TopicHistogram(records)
	want := []HistogramEntry{{"go", 2}, {"cli", 1}}
	if len(hist) != len(want) {
		t.Fatalf("got %d entries, want %d", len(hist), len(want))
	}
	for i, w := range want {
		if hist[i] != w {
			t.Errorf("hist[%d] = %+v, want %+v", i, hist[i], w)
		}
	}
}

func TestByStars(t *testing.T) {
	records := []Record{
		{Name: "low", Stars: 1},
		{Name: "tie-one", Stars: 5},
		{Name: "tie-two", Stars: 5},
		{Name: "high", Stars: 10},
	}

	sorted := ByStars(records)
	wantOrder := []string{"high", "tie-one", "tie-two", "low"}
	for i, name := range wantOrder {
		if sorted[i].Name != name {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Name, name)
		}
	}

	// Input order is untouched.
	if records[0].Name != "low" {
		t.Errorf("input mutated: records[0] = %q", records[0].Name)
	}
}

func TestByUpdated(t *testing.T) {
	records := []Record{
		{Name: "never"}, // null updated_at sorts least recent
		{Name: "old", UpdatedAt: strptr("2020-01-01T00:00:00Z")},
		{Name: "new", UpdatedAt: strptr("2024-06-01T00:00:00Z")},
	}

	sorted := ByUpdated(records)
	wantOrder := []string{"new", "old", "never"}
	for i, name := range wantOrder {
		if sorted[i].Name != name {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Name, name)
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Name: "a/a", Archived: true, OwnerType: strptr("Organization"), Language: strptr("Go"), Topics: []string{"go"}},
		{Name: "b/b", OwnerType: strptr("User"), Language: strptr("Go"), Topics: []string{"go", "cli"}},
		{Name: "c/c", OwnerType: strptr("organization"), Topics: []string{}}, // case-sensitive: not an org
		{Name: "d/d", Topics: []string{}},
	}

	s := Summarize(records)
	if s.Archived != 1 {
		t.Errorf("Archived = %d, want 1", s.Archived)
	}
	if s.Organizations != 1 {
		t.Errorf("Organizations = %d, want 1", s.Organizations)
	}
	if s.Users != 3 {
		t.Errorf("Users = %d, want 3", s.Users)
	}
	if s.Languages != 1 {
		t.Errorf("Languages = %d, want 1", s.Languages)
	}
	if s.Topics != 2 {
		t.Errorf("Topics = %d, want 2", s.Topics)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}
