package stars

import "sort"

// HistogramEntry is one (value, count) pair of a histogram.
type HistogramEntry struct {
	Value string
	Count int
}

// Summary holds scalar statistics over a record set.
type Summary struct {
	Archived      int // records with archived == true
	Organizations int // records whose owner_type is exactly "Organization"
	Users         int // total minus organizations
	Languages     int // distinct non-null languages
	Topics        int // distinct topics
}

// LanguageHistogram counts records per non-null language. Records with a
// null language are excluded entirely. Entries are ordered descending by
// count; equal counts keep first-seen order, so top-N slices are stable.
func LanguageHistogram(records []Record) []HistogramEntry {
	values := make([]string, 0, len(records))
	for _, r := range records {
		if r.Language != nil {
			values = append(values, *r.Language)
		}
	}
	return histogram(values)
}

// TopicHistogram flattens every record's topics into one multiset and
// counts per topic, with the same ordering rule as [LanguageHistogram].
func TopicHistogram(records []Record) []HistogramEntry {
	var values []string
	for _, r := range records {
		values = append(values, r.Topics...)
	}
	return histogram(values)
}

func histogram(values []string) []HistogramEntry {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]HistogramEntry, len(order))
	for i, v := range order {
		entries[i] = HistogramEntry{Value: v, Count: counts[v]}
	}
	// Stable sort over first-seen order keeps ties deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// ByStars returns a copy of records sorted descending by star count.
// Equal-star records retain their original relative order.
func ByStars(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	return sorted
}

// ByUpdated returns a copy of records sorted descending by updated_at.
// A null timestamp compares as the empty string, so it sorts after every
// real timestamp (least recent).
func ByUpdated(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return updatedKey(sorted[i]) > updatedKey(sorted[j])
	})
	return sorted
}

func updatedKey(r Record) string {
	if r.UpdatedAt == nil {
		return ""
	}
	return *r.UpdatedAt
}

// Summarize computes the scalar statistics panel inputs. The organization
// check compares owner_type against the literal "Organization",
// case-sensitively.
func Summarize(records []Record) Summary {
	s := Summary{
		Languages: len(LanguageHistogram(records)),
		Topics:    len(TopicHistogram(records)),
	}
	for _, r := range records {
		if r.Archived {
			s.Archived++
		}
		if r.OwnerType != nil && *r.OwnerType == "Organization" {
			s.Organizations++
		}
	}
	s.Users = len(records) - s.Organizations
	return s
}
