package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"
)

// MenuItemMongo is the MongoDB implementation of repository.MenuItemRepository.
// The struct-to-document mapping lives entirely in the bson tags on
// model.MenuItem; this type only issues queries and contains no business logic.
type MenuItemMongo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMenuItemMongo creates a new MenuItemMongo repository.
func NewMenuItemMongo(db *mongo.Database) *MenuItemMongo {
	return &MenuItemMongo{
		db:   db,
		coll: db.Collection(model.MenuItemCollection),
	}
}

var _ repository.MenuItemRepository = (*MenuItemMongo)(nil)

// Save upserts the menu item document keyed by its _id.
func (r *MenuItemMongo) Save(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	filter := bson.M{"_id": item.ID}
	_, err := r.coll.ReplaceOne(ctx, filter, item, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	out := *item
	return &out, nil
}

// FindByID fetches a single menu item by its document ID.
func (r *MenuItemMongo) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName fetches a single menu item by its unique name.
func (r *MenuItemMongo) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.coll.FindOne(ctx, bson.M{"itemName": name}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIngredientsNameIn returns all menu items containing at least one of
// the named ingredients. This is the query the original framework derived
// from the method name: {"ingredients.name": {"$in": names}}.
func (r *MenuItemMongo) FindByIngredientsNameIn(ctx context.Context, names ...string) ([]model.MenuItem, error) {
	if len(names) == 0 {
		return []model.MenuItem{}, nil
	}

	filter := bson.M{"ingredients.name": bson.M{"$in": names}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "itemName", Value: 1}}))
	if err != nil {
		return nil, err
	}

	items := make([]model.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns menu items sorted by name with limit/offset and a total count.
func (r *MenuItemMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MenuItem], error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "itemName", Value: 1}}).
		SetLimit(int64(pq.Limit)).
		SetSkip(int64(pq.Offset))
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]model.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.MenuItem]{
		Items: items,
		Total: int(total),
	}, nil
}

// Delete removes a menu item by ID. Missing documents are not an error.
func (r *MenuItemMongo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll removes every document in the menu collection.
func (r *MenuItemMongo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}
