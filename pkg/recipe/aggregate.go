package recipe

import (
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
)

// normalizedRow is a join row with every nullable column already coalesced,
// so the aggregation below never branches on nil.
type normalizedRow struct {
	recipeID        uint
	title           string
	method          string
	difficultyLevel string
	time            int
	servings        int
	image           string
	category        domain.CategoryRecipeResponse

	hasLine bool
	line    domain.RecipeIngredientLine
}

func normalizeRow(row domain.RecipeJoinRow) normalizedRow {
	n := normalizedRow{
		recipeID:        row.RecipeID,
		title:           row.Title,
		method:          row.Method,
		difficultyLevel: row.DifficultyLevel,
		time:            row.Time,
		servings:        row.Servings,
		category: domain.CategoryRecipeResponse{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
	}
	if row.Image != nil {
		n.image = *row.Image
	}
	if row.LineID == nil {
		return n
	}

	n.hasLine = true
	n.line = domain.RecipeIngredientLine{
		ID:       *row.LineID,
		RecipeID: row.RecipeID,
	}
	if row.QuantityNeeded != nil {
		n.line.QuantityNeeded = *row.QuantityNeeded
	}
	if row.IngredientID != nil {
		n.line.Ingredient.ID = *row.IngredientID
	}
	if row.IngredientName != nil {
		n.line.Ingredient.Name = *row.IngredientName
	}
	if row.UnitID != nil {
		n.line.Unit.ID = *row.UnitID
	}
	if row.UnitName != nil {
		n.line.Unit.Name = *row.UnitName
	}
	if row.UnitAbbreviation != nil {
		n.line.Unit.Abbreviation = *row.UnitAbbreviation
	}
	return n
}

// AggregateRows folds flat join rows into one FullRecipe per distinct recipe
// id, preserving first-seen order. A recipe whose only row carries null
// ingredient columns still appears, with an empty (non-nil) ingredient list.
func AggregateRows(rows []domain.RecipeJoinRow) []domain.FullRecipe {
	index := make(map[uint]int, len(rows))
	recipes := make([]domain.FullRecipe, 0, len(rows))

	for _, raw := range rows {
		row := normalizeRow(raw)

		pos, seen := index[row.recipeID]
		if !seen {
			pos = len(recipes)
			index[row.recipeID] = pos
			recipes = append(recipes, domain.FullRecipe{
				ID:              row.recipeID,
				Title:           row.title,
				Method:          row.method,
				DifficultyLevel: row.difficultyLevel,
				Time:            row.time,
				Servings:        row.servings,
				Image:           row.image,
				Category:        row.category,
				Ingredients:     []domain.RecipeIngredientLine{},
			})
		}

		if row.hasLine {
			recipes[pos].Ingredients = append(recipes[pos].Ingredients, row.line)
		}
	}

	return recipes
}
