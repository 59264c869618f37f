package vocab

import "fmt"

// Category groups entries by topic. The numeric order is the display order.
type Category int

const (
	Greetings Category = iota
	CoreVerbs
	Numbers
	Family
	Food
	Colors
	Time
	Body
	Home
	Travel
	School
	Adjectives
)

// Categories lists all categories in display order.
var Categories = []Category{
	Greetings, CoreVerbs, Numbers, Family, Food, Colors,
	Time, Body, Home, Travel, School, Adjectives,
}

// String returns the Vietnamese display name of the category
func (c Category) String() string {
	switch c {
	case Greetings:
		return "Chào hỏi"
	case CoreVerbs:
		return "Động từ cơ bản"
	case Numbers:
		return "Số đếm"
	case Family:
		return "Gia đình"
	case Food:
		return "Ăn uống"
	case Colors:
		return "Màu sắc"
	case Time:
		return "Thời gian"
	case Body:
		return "Cơ thể"
	case Home:
		return "Nhà cửa"
	case Travel:
		return "Du lịch"
	case School:
		return "Học tập & công việc"
	case Adjectives:
		return "Tính từ"
	}
	return "?"
}

// Entry is a single German word with its Vietnamese translation.
// Alternates are additional accepted spellings or synonyms for each side.
type Entry struct {
	German         string
	GermanAlts     []string
	Vietnamese     string
	VietnameseAlts []string
	Category       Category
}

// ID returns the stable identifier used as the join key against persisted
// progress. Two entries sharing both primary forms would collide, which is
// why CheckUnique runs at startup.
func (e Entry) ID() string {
	return e.German + "|" + e.Vietnamese
}

// All returns every entry in display order: category order first, then
// declaration order within the category. The returned slice is a fresh copy.
func All() []Entry {
	total := 0
	for _, g := range groups {
		total += len(g.entries)
	}

	out := make([]Entry, 0, total)
	for _, g := range groups {
		for _, e := range g.entries {
			e.Category = g.category
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns the entries of a single category in declaration order.
func ByCategory(c Category) []Entry {
	for _, g := range groups {
		if g.category != c {
			continue
		}
		out := make([]Entry, 0, len(g.entries))
		for _, e := range g.entries {
			e.Category = g.category
			out = append(out, e)
		}
		return out
	}
	return nil
}

// CheckUnique verifies that no two entries produce the same ID. Learned
// state is keyed by ID, so a collision would silently merge the progress of
// two distinct words.
func CheckUnique(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		id := e.ID()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate vocabulary id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
