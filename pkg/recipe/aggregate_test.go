package recipe

import (
	"testing"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func headerRow(recipeID uint, title string, catID uint, catName string) domain.RecipeJoinRow {
	return domain.RecipeJoinRow{
		RecipeID:        recipeID,
		Title:           title,
		Method:          "method",
		DifficultyLevel: "easy",
		Time:            30,
		Servings:        2,
		CategoryID:      catID,
		CategoryName:    catName,
	}
}

func lineRow(base domain.RecipeJoinRow, lineID, ingID uint, ingName string, qty float64, unitID uint, unitName, unitAbbr string) domain.RecipeJoinRow {
	base.LineID = uintPtr(lineID)
	base.IngredientID = uintPtr(ingID)
	base.IngredientName = strPtr(ingName)
	base.QuantityNeeded = floatPtr(qty)
	base.UnitID = uintPtr(unitID)
	base.UnitName = strPtr(unitName)
	base.UnitAbbreviation = strPtr(unitAbbr)
	return base
}

func TestAggregateRowsCompleteness(t *testing.T) {
	soup := headerRow(1, "Tomato Soup", 5, "Soup")
	salad := headerRow(2, "Green Salad", 6, "Salad")

	rows := []domain.RecipeJoinRow{
		lineRow(soup, 100, 10, "Tomato", 4, 1, "piece", "pc"),
		lineRow(soup, 101, 11, "Salt", 1, 2, "teaspoon", "tsp"),
		lineRow(salad, 102, 12, "Lettuce", 1, 1, "piece", "pc"),
	}

	recipes := AggregateRows(rows)

	require.Len(t, recipes, 2)

	totalLines := 0
	for _, r := range recipes {
		totalLines += len(r.Ingredients)
	}
	assert.Equal(t, 3, totalLines)

	assert.Equal(t, uint(1), recipes[0].ID)
	assert.Equal(t, "Tomato Soup", recipes[0].Title)
	assert.Equal(t, domain.CategoryRecipeResponse{ID: 5, Name: "Soup"}, recipes[0].Category)
	require.Len(t, recipes[0].Ingredients, 2)
	assert.Equal(t, "Tomato", recipes[0].Ingredients[0].Ingredient.Name)
	assert.Equal(t, "tsp", recipes[0].Ingredients[1].Unit.Abbreviation)

	assert.Equal(t, uint(2), recipes[1].ID)
	require.Len(t, recipes[1].Ingredients, 1)
}

func TestAggregateRowsRecipeWithoutIngredients(t *testing.T) {
	rows := []domain.RecipeJoinRow{
		headerRow(7, "Boiled Water", 5, "Soup"),
	}

	recipes := AggregateRows(rows)

	require.Len(t, recipes, 1)
	require.NotNil(t, recipes[0].Ingredients)
	assert.Empty(t, recipes[0].Ingredients)
	assert.Equal(t, "Boiled Water", recipes[0].Title)
}

func TestAggregateRowsMixedEmptyAndPopulated(t *testing.T) {
	full := headerRow(1, "Stew", 5, "Soup")

	rows := []domain.RecipeJoinRow{
		lineRow(full, 100, 10, "Beef", 500, 3, "gram", "g"),
		headerRow(2, "Empty Plate", 6, "Other"),
		lineRow(full, 101, 11, "Carrot", 2, 1, "piece", "pc"),
	}

	recipes := AggregateRows(rows)

	require.Len(t, recipes, 2)
	assert.Equal(t, uint(1), recipes[0].ID)
	assert.Len(t, recipes[0].Ingredients, 2)
	assert.Equal(t, uint(2), recipes[1].ID)
	assert.Empty(t, recipes[1].Ingredients)
}

func TestAggregateRowsNullSubFieldFallbacks(t *testing.T) {
	row := headerRow(1, "Mystery Dish", 5, "Soup")
	// Line exists but every sub-field beyond the key is null.
	row.LineID = uintPtr(100)

	recipes := AggregateRows([]domain.RecipeJoinRow{row})

	require.Len(t, recipes, 1)
	require.Len(t, recipes[0].Ingredients, 1)

	line := recipes[0].Ingredients[0]
	assert.Equal(t, uint(100), line.ID)
	assert.Equal(t, uint(0), line.Ingredient.ID)
	assert.Equal(t, "", line.Ingredient.Name)
	assert.Equal(t, 0.0, line.QuantityNeeded)
	assert.Equal(t, uint(0), line.Unit.ID)
	assert.Equal(t, "", line.Unit.Name)
	assert.Equal(t, "", line.Unit.Abbreviation)
}

func TestAggregateRowsPreservesFirstSeenOrder(t *testing.T) {
	rows := []domain.RecipeJoinRow{
		headerRow(9, "Last Alphabetically", 5, "Soup"),
		headerRow(3, "Apple Pie", 6, "Dessert"),
		headerRow(5, "Bread", 7, "Baking"),
	}

	recipes := AggregateRows(rows)

	require.Len(t, recipes, 3)
	assert.Equal(t, []uint{9, 3, 5}, []uint{recipes[0].ID, recipes[1].ID, recipes[2].ID})
}

func TestAggregateRowsIdempotent(t *testing.T) {
	soup := headerRow(1, "Tomato Soup", 5, "Soup")
	rows := []domain.RecipeJoinRow{
		lineRow(soup, 100, 10, "Tomato", 4, 1, "piece", "pc"),
		lineRow(soup, 101, 11, "Salt", 1, 2, "teaspoon", "tsp"),
		headerRow(2, "Empty", 6, "Other"),
	}

	first := AggregateRows(rows)
	second := AggregateRows(rows)

	assert.Equal(t, first, second)
}
