package question

import (
	"fmt"
	"strings"
)

// MapFunc maps a phone to its replacement phones in another inventory.
// An empty result or a blank first element means no mapping is available;
// the phone is dropped from the converted question.
type MapFunc func(phone string) []string

// AutoGenSuffix is appended to the phone name when synthesizing a
// coverage singleton question.
const AutoGenSuffix = "_AutoGen_"

// Converter remaps questions between phone inventories. Phones that have
// no mapping are dropped silently from the output; one warning per dropped
// phone accumulates in Warnings for callers that want visibility.
type Converter struct {
	Warnings []string
}

// Convert builds a new question with the same name, replacing each phone
// with its mapped phones. Input phones are visited in order and are not
// deduplicated; replacement phones are appended without deduplication, so
// two source phones mapping to the same target produce a duplicate entry.
func (c *Converter) Convert(q *PhoneQuestion, mapPhone MapFunc) *PhoneQuestion {
	out := New(q.Name)
	for _, p := range q.Phones {
		repl := mapPhone(p)
		if len(repl) == 0 || strings.TrimSpace(repl[0]) == "" {
			c.Warnings = append(c.Warnings,
				fmt.Sprintf("phone mapping not found for %q in question %q", p, q.Name))
			continue
		}
		out.Phones = append(out.Phones, repl...)
	}
	return out
}

// ConvertAll remaps every question in order, then deduplicates the result
// first by name and then by canonical phone content.
func (c *Converter) ConvertAll(qs []*PhoneQuestion, mapPhone MapFunc) []*PhoneQuestion {
	mapped := make([]*PhoneQuestion, 0, len(qs))
	for _, q := range qs {
		mapped = append(mapped, c.Convert(q, mapPhone))
	}
	return dedupe(mapped)
}

// dedupe keeps, in first-seen order, the first question for each distinct
// name and then the first for each distinct canonical key. Questions with
// no phones are dropped outright. First-seen order is maintained with a
// slice; the maps are membership tests only.
func dedupe(qs []*PhoneQuestion) []*PhoneQuestion {
	byName := make([]*PhoneQuestion, 0, len(qs))
	seenName := make(map[string]bool, len(qs))
	for _, q := range qs {
		if len(q.Phones) == 0 {
			continue
		}
		if seenName[q.Name] {
			continue
		}
		seenName[q.Name] = true
		byName = append(byName, q)
	}

	out := make([]*PhoneQuestion, 0, len(byName))
	seenKey := make(map[string]bool, len(byName))
	for _, q := range byName {
		key := q.CanonicalKey()
		if seenKey[key] {
			continue
		}
		seenKey[key] = true
		out = append(out, q)
	}
	return out
}

// MissingPhoneSet returns the singleton questions needed so that every
// phone in referencePhones is covered by at least one singleton question.
// Only questions with exactly one phone count toward coverage. Output
// order follows the first appearance of each uncovered phone in
// referencePhones; duplicate reference phones are tracked once.
func MissingPhoneSet(qs []*PhoneQuestion, referencePhones []string) []*PhoneQuestion {
	covered := make(map[string]bool)
	for _, q := range qs {
		if len(q.Phones) == 1 {
			covered[q.Phones[0]] = true
		}
	}

	var missing []*PhoneQuestion
	seen := make(map[string]bool, len(referencePhones))
	for _, p := range referencePhones {
		if seen[p] {
			continue
		}
		seen[p] = true
		if covered[p] {
			continue
		}
		q := New(p + AutoGenSuffix)
		q.Add(p)
		missing = append(missing, q)
	}
	return missing
}
