package calculate

import (
	"sort"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
)

// Annotate flags each ingredient line of a recipe against the user's owned
// ingredient set. Missing lines are collected in original list order. Pure:
// no I/O, same inputs always yield the same output.
func Annotate(recipe domain.FullRecipe, owned map[uint]struct{}) domain.AnnotatedRecipe {
	annotated := domain.AnnotatedRecipe{
		ID:                 recipe.ID,
		Title:              recipe.Title,
		Method:             recipe.Method,
		DifficultyLevel:    recipe.DifficultyLevel,
		Time:               recipe.Time,
		Servings:           recipe.Servings,
		Image:              recipe.Image,
		Category:           recipe.Category,
		Ingredients:        make([]domain.AnnotatedIngredient, 0, len(recipe.Ingredients)),
		MissingIngredients: []domain.AnnotatedIngredient{},
	}

	for _, line := range recipe.Ingredients {
		_, has := owned[line.Ingredient.ID]
		ing := domain.AnnotatedIngredient{
			ID:             line.ID,
			RecipeID:       line.RecipeID,
			Ingredient:     line.Ingredient,
			Unit:           line.Unit,
			QuantityNeeded: line.QuantityNeeded,
			IsMissing:      !has,
		}

		annotated.Ingredients = append(annotated.Ingredients, ing)
		if ing.IsMissing {
			annotated.MissingIngredients = append(annotated.MissingIngredients, ing)
			annotated.MissingCount++
		}
	}

	return annotated
}

// Rank partitions annotated recipes into groups keyed by missing count and
// emits the groups ascending, so recipes the user can already make come
// first. The partition is stable: within a group, input order is preserved.
// A non-zero categoryID filters to that recipe category first.
func Rank(recipes []domain.AnnotatedRecipe, categoryID uint) []domain.RecipeGroup {
	buckets := make(map[int][]domain.AnnotatedRecipe)
	counts := make([]int, 0)

	for _, r := range recipes {
		if categoryID != 0 && r.Category.ID != categoryID {
			continue
		}
		if _, seen := buckets[r.MissingCount]; !seen {
			counts = append(counts, r.MissingCount)
		}
		buckets[r.MissingCount] = append(buckets[r.MissingCount], r)
	}

	sort.Ints(counts)

	groups := make([]domain.RecipeGroup, 0, len(counts))
	for _, count := range counts {
		groups = append(groups, domain.RecipeGroup{
			MissingCount: count,
			Recipes:      buckets[count],
		})
	}
	return groups
}
