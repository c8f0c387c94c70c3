package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noodlebar/internal/model"
)

// EnsureIndexes declares the secondary indexes the queries depend on.
// CreateMany is idempotent for identical definitions, so this runs on every
// startup (the document-store equivalent of the schema migration step).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	menu := db.Collection(model.MenuItemCollection)
	_, err := menu.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "itemName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Backs FindByIngredientsNameIn
			Keys: bson.D{{Key: "ingredients.name", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create menu indexes: %w", err)
	}

	orders := db.Collection(model.OrderCollection)
	_, err = orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "dateTimeOfSubmission", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}

	return nil
}
