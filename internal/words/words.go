// Package words holds the build-time target word list and the per-run state
// derived from it: precompiled line matchers and word existence flags.
package words

import (
	"regexp"

	"github.com/harrison/wordcheck/internal/models"
)

// TargetWords is the ordered list of words searched for in every scanned file.
// Edit and rebuild to change it; empty entries are ignored.
var TargetWords = []string{
	"This",
	"Check",
	"Just",
}

// Filter returns the non-empty entries of list, preserving order
func Filter(list []string) []string {
	filtered := make([]string, 0, len(list))
	for _, w := range list {
		if w == "" {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

// Matcher tests whether a line contains a single target word
type Matcher struct {
	Word string
	re   *regexp.Regexp
}

// NewMatcher compiles the "anything + word + anything" full-line pattern for word.
// The word is matched literally.
func NewMatcher(word string) *Matcher {
	return &Matcher{
		Word: word,
		re:   regexp.MustCompile(`^.*` + regexp.QuoteMeta(word) + `.*$`),
	}
}

// Match reports whether line contains the word
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// Set is the per-run word state: one matcher and one existence flag per word.
// It is not safe for concurrent use.
type Set struct {
	matchers []*Matcher
	found    map[string]bool
}

// NewSet builds matchers and existence flags for the non-empty words of list.
// All flags start false.
func NewSet(list []string) *Set {
	words := Filter(list)
	s := &Set{
		matchers: make([]*Matcher, 0, len(words)),
		found:    make(map[string]bool, len(words)),
	}
	for _, w := range words {
		if _, dup := s.found[w]; dup {
			continue
		}
		s.matchers = append(s.matchers, NewMatcher(w))
		s.found[w] = false
	}
	return s
}

// MatchLine tests line against every word in order. Each matching word is
// marked found and returned.
func (s *Set) MatchLine(line string) []string {
	var matched []string
	for _, m := range s.matchers {
		if m.Match(line) {
			s.found[m.Word] = true
			matched = append(matched, m.Word)
		}
	}
	return matched
}

// Found reports whether word has been seen. Unknown words report false.
func (s *Set) Found(word string) bool {
	return s.found[word]
}

// Presence returns the existence flags in word order
func (s *Set) Presence() []models.WordPresence {
	out := make([]models.WordPresence, len(s.matchers))
	for i, m := range s.matchers {
		out[i] = models.WordPresence{Word: m.Word, Found: s.Found(m.Word)}
	}
	return out
}
