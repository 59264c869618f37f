package quiz

import (
	"math/rand"
	"strings"

	"wortschatz/internal/vocab"
)

// Direction says which language is prompted and which one is answered.
type Direction int

const (
	GermanToVietnamese Direction = iota
	VietnameseToGerman
)

// String returns the Vietnamese display name of the direction
func (d Direction) String() string {
	if d == VietnameseToGerman {
		return "Việt → Đức"
	}
	return "Đức → Việt"
}

// Marker receives words the moment they are confirmed known, so that
// learned state is persisted even if the session is abandoned halfway.
// *service.ProgressService satisfies it.
type Marker interface {
	MarkLearned(userID int64, id string) error
}

// Session walks a fixed random sample of unlearned words one at a time.
// Each word ends up classified exactly once: correct if the user answered or
// self-reported it, open if the session advanced past it otherwise.
type Session struct {
	userID    int64
	direction Direction
	words     []vocab.Entry
	cursor    int
	correct   map[string]struct{}
	open      map[string]struct{}
	marker    Marker
}

// Summary is the session result: the correct and still-open words in sample
// order.
type Summary struct {
	Correct []vocab.Entry
	Open    []vocab.Entry
}

// NewSession draws a session sample from pool. The pool is shuffled
// uniformly and the first min(requestedSize, len(pool)) words form the
// sample; a requested size below 1 is clamped to 1 and an empty pool yields
// a session that is immediately done. The pool slice itself is not modified.
func NewSession(userID int64, direction Direction, requestedSize int, pool []vocab.Entry, rng *rand.Rand, marker Marker) *Session {
	shuffled := make([]vocab.Entry, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	size := requestedSize
	if size < 1 {
		size = 1
	}
	if size > len(shuffled) {
		size = len(shuffled)
	}

	return &Session{
		userID:    userID,
		direction: direction,
		words:     shuffled[:size],
		correct:   make(map[string]struct{}),
		open:      make(map[string]struct{}),
		marker:    marker,
	}
}

// Direction returns the session's translation direction.
func (s *Session) Direction() Direction {
	return s.direction
}

// Size returns the number of words in the sample.
func (s *Session) Size() int {
	return len(s.words)
}

// Cursor returns the 0-based index of the current word.
func (s *Session) Cursor() int {
	return s.cursor
}

// Done reports whether the session has walked past its last word.
func (s *Session) Done() bool {
	return s.cursor >= len(s.words)
}

// Current returns the word at the cursor. The second value is false once the
// session is done.
func (s *Session) Current() (vocab.Entry, bool) {
	if s.Done() {
		return vocab.Entry{}, false
	}
	return s.words[s.cursor], true
}

// Prompt returns the primary form of the current word in the prompt
// language.
func (s *Session) Prompt() (string, bool) {
	e, ok := s.Current()
	if !ok {
		return "", false
	}
	if s.direction == VietnameseToGerman {
		return e.Vietnamese, true
	}
	return e.German, true
}

// AcceptableAnswers returns the primary form plus all alternates of the
// current word in the answer language.
func (s *Session) AcceptableAnswers() []string {
	e, ok := s.Current()
	if !ok {
		return nil
	}
	if s.direction == VietnameseToGerman {
		return append([]string{e.German}, e.GermanAlts...)
	}
	return append([]string{e.Vietnamese}, e.VietnameseAlts...)
}

// CheckAnswer compares the typed answer against the acceptable answers of
// the current word. Comparison trims surrounding whitespace and lowercases
// both sides; there is no diacritic folding or fuzzy matching. A correct
// answer marks the word, which is reported to the progress marker right
// away; the returned error is the marker's persistence error, the in-session
// classification stands either way.
func (s *Session) CheckAnswer(raw string) (bool, error) {
	if s.Done() {
		return false, nil
	}
	given := normalize(raw)
	for _, want := range s.AcceptableAnswers() {
		if given == normalize(want) {
			return true, s.MarkCurrentLearned()
		}
	}
	return false, nil
}

// MarkCurrentLearned marks the current word correct without an answer
// check, for when the user self-reports knowing it.
func (s *Session) MarkCurrentLearned() error {
	e, ok := s.Current()
	if !ok {
		return nil
	}
	id := e.ID()
	s.correct[id] = struct{}{}
	delete(s.open, id)
	return s.marker.MarkLearned(s.userID, id)
}

// Advance classifies the current word and moves the cursor. A word not
// marked correct by now is left open. Classification always runs before the
// termination check so the last word is never skipped. Returns true while
// the session still has words left.
func (s *Session) Advance() bool {
	if e, ok := s.Current(); ok {
		id := e.ID()
		if _, correct := s.correct[id]; !correct {
			s.open[id] = struct{}{}
		}
		s.cursor++
	}
	return !s.Done()
}

// Summary partitions the sample into correct and open words, each in sample
// order.
func (s *Session) Summary() Summary {
	sum := Summary{}
	for _, e := range s.words {
		id := e.ID()
		if _, ok := s.correct[id]; ok {
			sum.Correct = append(sum.Correct, e)
		} else if _, ok := s.open[id]; ok {
			sum.Open = append(sum.Open, e)
		}
	}
	return sum
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
