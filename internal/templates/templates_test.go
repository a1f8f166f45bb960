package templates

import (
	"testing"

	"github.com/tallytrack/tally/internal/models"
	"github.com/tallytrack/tally/internal/validation"
)

func TestCatalogEntriesAreValid(t *testing.T) {
	for _, tpl := range Catalog() {
		if err := validation.ValidateHabitInput(tpl.Params()); err != nil {
			t.Errorf("template %q is invalid: %v", tpl.Name, err)
		}
	}
}

func TestCatalogGrouping(t *testing.T) {
	grouped := ByCategory()

	total := 0
	for cat, group := range grouped {
		if !cat.Valid() {
			t.Errorf("catalog uses unknown category %s", cat)
		}
		total += len(group)
	}
	if total != len(Catalog()) {
		t.Errorf("grouping lost templates: %d != %d", total, len(Catalog()))
	}

	for _, cat := range []models.Category{
		models.CategoryHealth,
		models.CategoryFitness,
		models.CategoryMindfulness,
		models.CategoryProductivity,
		models.CategoryLearning,
		models.CategorySocial,
		models.CategoryOther,
	} {
		if len(grouped[cat]) == 0 {
			t.Errorf("no templates for category %s", cat)
		}
	}
}

func TestFind(t *testing.T) {
	tpl, ok := Find("Meditate")
	if !ok {
		t.Fatal("expected to find the Meditate template")
	}
	if tpl.Type != models.HabitTypeTimer || tpl.Goal == nil {
		t.Errorf("unexpected template: %+v", tpl)
	}

	if _, ok := Find("Not a template"); ok {
		t.Error("unknown names must not match")
	}
}
