package event

import (
	"slices"
	"strings"
)

type Category string

const (
	CategoryWedding    Category = "wedding"
	CategoryCorporate  Category = "corporate"
	CategoryBirthday   Category = "birthday"
	CategoryConference Category = "conference"
	CategoryParty      Category = "party"
	CategoryOther      Category = "other"
)

var categories = []Category{
	CategoryWedding,
	CategoryCorporate,
	CategoryBirthday,
	CategoryConference,
	CategoryParty,
	CategoryOther,
}

// exact aliases seen in free-text event type columns and ICS CATEGORIES
var categoryAliases = map[string]Category{
	"wedding":           CategoryWedding,
	"weddings":          CategoryWedding,
	"wedding reception": CategoryWedding,
	"wedding ceremony":  CategoryWedding,
	"marriage":          CategoryWedding,
	"nuptial":           CategoryWedding,
	"corporate":         CategoryCorporate,
	"corporate event":   CategoryCorporate,
	"company event":     CategoryCorporate,
	"business":          CategoryCorporate,
	"team building":     CategoryCorporate,
	"birthday":          CategoryBirthday,
	"birthday party":    CategoryBirthday,
	"debut":             CategoryBirthday,
	"anniversary":       CategoryParty,
	"party":             CategoryParty,
	"reunion":           CategoryParty,
	"christening":       CategoryParty,
	"conference":        CategoryConference,
	"seminar":           CategoryConference,
	"workshop":          CategoryConference,
	"meeting":           CategoryConference,
	"other":             CategoryOther,
}

// keyword fallbacks, checked in order. Keywords match whole words. A head
// keyword only counts as the last word, so "wedding rehearsal" or
// "pre-wedding shoot" does not block a whole day.
var categoryKeywords = []struct {
	keyword  string
	category Category
	head     bool
}{
	{"wedding", CategoryWedding, true},
	{"weddings", CategoryWedding, true},
	{"corporate", CategoryCorporate, false},
	{"birthday", CategoryBirthday, false},
	{"conference", CategoryConference, false},
	{"seminar", CategoryConference, false},
	{"party", CategoryParty, false},
}

// words that turn a head keyword into something else: "non-wedding", "post wedding"
var keywordQualifiers = map[string]struct{}{
	"non":   {},
	"pre":   {},
	"post":  {},
	"anti":  {},
	"after": {},
	"mock":  {},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// NormalizeCategory maps a free-text event type onto the closed category set.
// Anything unrecognized becomes CategoryOther.
func NormalizeCategory(raw string) Category {
	key := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(raw))
	key = strings.Join(strings.Fields(key), " ")
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	words := strings.Fields(key)
	for _, kw := range categoryKeywords {
		if matchesKeyword(words, kw.keyword, kw.head) {
			return kw.category
		}
	}
	return CategoryOther
}

func matchesKeyword(words []string, keyword string, head bool) bool {
	if !head {
		return slices.Contains(words, keyword)
	}
	n := len(words)
	if n == 0 || words[n-1] != keyword {
		return false
	}
	if n > 1 {
		if _, qualified := keywordQualifiers[words[n-2]]; qualified {
			return false
		}
	}
	return true
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) IsWedding() bool {
	return c == CategoryWedding
}
