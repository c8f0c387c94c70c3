package mongodb

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"noodlebar/internal/model"
)

// The two-function MapReduce pair for ingredient analysis. Both functions are
// handed wholesale to the database engine via the mapReduce command; nothing
// runs client-side. map emits (ingredient name, 1) per ingredient occurrence,
// reduce folds the emitted counts per name.
const (
	ingredientsMapJS = `function() {
  for (var idx = 0; idx < this.ingredients.length; idx++) {
    emit(this.ingredients[idx].name, 1);
  }
}`

	ingredientsReduceJS = `function(name, current) {
  return Array.sum(current);
}`
)

// mapReduceResult is the inline-output shape of the mapReduce command.
type mapReduceResult struct {
	Results []model.IngredientCount `bson:"results"`
}

// AnalyseIngredients runs the ingredient usage MapReduce on the server with
// inline output and returns the counts sorted by ingredient name.
func (r *MenuItemMongo) AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error) {
	cmd := bson.D{
		{Key: "mapReduce", Value: model.MenuItemCollection},
		{Key: "map", Value: primitive.JavaScript(ingredientsMapJS)},
		{Key: "reduce", Value: primitive.JavaScript(ingredientsReduceJS)},
		{Key: "out", Value: bson.D{{Key: "inline", Value: 1}}},
	}

	var res mapReduceResult
	if err := r.db.RunCommand(ctx, cmd).Decode(&res); err != nil {
		return nil, err
	}

	// Inline output order is not guaranteed by the server
	sort.Slice(res.Results, func(i, j int) bool {
		return res.Results[i].Name < res.Results[j].Name
	})

	if res.Results == nil {
		res.Results = []model.IngredientCount{}
	}
	return res.Results, nil
}
