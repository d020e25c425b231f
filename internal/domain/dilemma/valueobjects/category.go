package valueobjects

import "fmt"

// Category classifies a dilemma so helpers with matching expertise can
// find it. FilterAll is a feed filter value, never a stored category.
type Category string

const (
	CategoryRelationships    Category = "Relationships"
	CategoryAnxiety          Category = "Anxiety"
	CategoryDepression       Category = "Depression"
	CategoryGrief            Category = "Grief"
	CategoryWorkStress       Category = "Work Stress"
	CategoryLoneliness       Category = "Loneliness"
	CategorySelfEsteem       Category = "Self-Esteem"
	CategoryCopingStrategies Category = "Coping Strategies"
	CategoryOther            Category = "Other"
)

const FilterAll = "All"

var validCategories = map[Category]bool{
	CategoryRelationships:    true,
	CategoryAnxiety:          true,
	CategoryDepression:       true,
	CategoryGrief:            true,
	CategoryWorkStress:       true,
	CategoryLoneliness:       true,
	CategorySelfEsteem:       true,
	CategoryCopingStrategies: true,
	CategoryOther:            true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// AllCategories returns the valid categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryRelationships,
		CategoryAnxiety,
		CategoryDepression,
		CategoryGrief,
		CategoryWorkStress,
		CategoryLoneliness,
		CategorySelfEsteem,
		CategoryCopingStrategies,
		CategoryOther,
	}
}
