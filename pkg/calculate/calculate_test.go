package calculate

import (
	"testing"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecipe(id uint, catID uint, lines ...domain.RecipeIngredientLine) domain.FullRecipe {
	return domain.FullRecipe{
		ID:          id,
		Title:       "Recipe",
		Category:    domain.CategoryRecipeResponse{ID: catID, Name: "Category"},
		Ingredients: lines,
	}
}

func makeLine(lineID, ingID uint, name string) domain.RecipeIngredientLine {
	return domain.RecipeIngredientLine{
		ID:         lineID,
		Ingredient: domain.IngredientRef{ID: ingID, Name: name},
	}
}

func owned(ids ...uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestAnnotateMissingCount(t *testing.T) {
	recipe := makeRecipe(1, 5,
		makeLine(100, 10, "Salt"),
		makeLine(101, 20, "Water"),
	)

	annotated := Annotate(recipe, owned(10))

	assert.Equal(t, 1, annotated.MissingCount)
	require.Len(t, annotated.MissingIngredients, 1)
	assert.Equal(t, "Water", annotated.MissingIngredients[0].Ingredient.Name)

	require.Len(t, annotated.Ingredients, 2)
	assert.False(t, annotated.Ingredients[0].IsMissing)
	assert.True(t, annotated.Ingredients[1].IsMissing)

	missingFlags := 0
	for _, ing := range annotated.Ingredients {
		if ing.IsMissing {
			missingFlags++
		}
	}
	assert.Equal(t, annotated.MissingCount, missingFlags)
	assert.Equal(t, annotated.MissingCount, len(annotated.MissingIngredients))
}

func TestAnnotateFullOwnership(t *testing.T) {
	recipe := makeRecipe(1, 5,
		makeLine(100, 10, "Salt"),
		makeLine(101, 20, "Water"),
	)

	annotated := Annotate(recipe, owned(10, 20))

	assert.Equal(t, 0, annotated.MissingCount)
	assert.Empty(t, annotated.MissingIngredients)
}

func TestAnnotateEmptyOwnershipSet(t *testing.T) {
	recipe := makeRecipe(1, 5,
		makeLine(100, 10, "Salt"),
		makeLine(101, 20, "Water"),
	)

	annotated := Annotate(recipe, owned())

	assert.Equal(t, 2, annotated.MissingCount)
}

func TestAnnotateMissingOrderMatchesLineOrder(t *testing.T) {
	recipe := makeRecipe(1, 5,
		makeLine(100, 10, "Flour"),
		makeLine(101, 20, "Sugar"),
		makeLine(102, 30, "Butter"),
	)

	annotated := Annotate(recipe, owned(20))

	require.Len(t, annotated.MissingIngredients, 2)
	assert.Equal(t, "Flour", annotated.MissingIngredients[0].Ingredient.Name)
	assert.Equal(t, "Butter", annotated.MissingIngredients[1].Ingredient.Name)
}

func annotatedWithCount(id uint, catID uint, missingCount int) domain.AnnotatedRecipe {
	return domain.AnnotatedRecipe{
		ID:           id,
		Category:     domain.CategoryRecipeResponse{ID: catID},
		MissingCount: missingCount,
	}
}

func TestRankMonotonicity(t *testing.T) {
	recipes := []domain.AnnotatedRecipe{
		annotatedWithCount(1, 5, 3),
		annotatedWithCount(2, 5, 0),
		annotatedWithCount(3, 5, 1),
		annotatedWithCount(4, 5, 3),
		annotatedWithCount(5, 5, 0),
	}

	groups := Rank(recipes, 0)

	require.Len(t, groups, 3)
	for i := 1; i < len(groups); i++ {
		assert.Less(t, groups[i-1].MissingCount, groups[i].MissingCount)
	}
	for _, g := range groups {
		for _, r := range g.Recipes {
			assert.Equal(t, g.MissingCount, r.MissingCount)
		}
	}
}

func TestRankStableWithinGroup(t *testing.T) {
	recipes := []domain.AnnotatedRecipe{
		annotatedWithCount(9, 5, 1),
		annotatedWithCount(2, 5, 1),
		annotatedWithCount(7, 5, 1),
	}

	groups := Rank(recipes, 0)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Recipes, 3)
	assert.Equal(t, uint(9), groups[0].Recipes[0].ID)
	assert.Equal(t, uint(2), groups[0].Recipes[1].ID)
	assert.Equal(t, uint(7), groups[0].Recipes[2].ID)
}

func TestRankCategoryFilter(t *testing.T) {
	recipes := []domain.AnnotatedRecipe{
		annotatedWithCount(1, 5, 0),
		annotatedWithCount(2, 6, 0),
		annotatedWithCount(3, 5, 2),
	}

	groups := Rank(recipes, 5)

	require.Len(t, groups, 2)
	for _, g := range groups {
		for _, r := range g.Recipes {
			assert.Equal(t, uint(5), r.Category.ID)
		}
	}
}

func TestRankCategoryFilterMatchingNothing(t *testing.T) {
	recipes := []domain.AnnotatedRecipe{
		annotatedWithCount(1, 5, 0),
	}

	groups := Rank(recipes, 42)

	assert.Empty(t, groups)
}

func TestRankEmptyInput(t *testing.T) {
	groups := Rank(nil, 0)

	assert.Empty(t, groups)
}
