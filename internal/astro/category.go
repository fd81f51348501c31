package astro

import "fmt"

// CategoryKey identifies one section of the AI reading. The set is closed;
// anything else is a routing error.
type CategoryKey string

const (
	CategoryPersonality   CategoryKey = "personality"
	CategoryHealth        CategoryKey = "health"
	CategoryMoney         CategoryKey = "money"
	CategoryCareer        CategoryKey = "career"
	CategoryLove          CategoryKey = "love"
	CategoryMiscellaneous CategoryKey = "miscellaneous"
)

// Categories returns every category in display order.
func Categories() []CategoryKey {
	return []CategoryKey{
		CategoryPersonality,
		CategoryHealth,
		CategoryMoney,
		CategoryCareer,
		CategoryLove,
		CategoryMiscellaneous,
	}
}

// Title returns the display name of the category.
func (c CategoryKey) Title() string {
	switch c {
	case CategoryPersonality:
		return "Personality"
	case CategoryHealth:
		return "Health"
	case CategoryMoney:
		return "Money"
	case CategoryCareer:
		return "Career"
	case CategoryLove:
		return "Love"
	case CategoryMiscellaneous:
		return "Miscellaneous"
	default:
		return "Unknown"
	}
}

// Icon returns the glyph shown on the category card.
func (c CategoryKey) Icon() string {
	switch c {
	case CategoryPersonality:
		return "♈"
	case CategoryHealth:
		return "♋"
	case CategoryMoney:
		return "♉"
	case CategoryCareer:
		return "♑"
	case CategoryLove:
		return "♓"
	default:
		return "✶"
	}
}

// ParseCategory validates a route parameter against the closed enumeration.
// Callers must redirect to the report's default view on error instead of
// rendering anything.
func ParseCategory(s string) (CategoryKey, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
