package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"
)

// OrderMongo is the MongoDB implementation of repository.OrderRepository.
type OrderMongo struct {
	coll *mongo.Collection
}

// NewOrderMongo creates a new OrderMongo repository.
func NewOrderMongo(db *mongo.Database) *OrderMongo {
	return &OrderMongo{coll: db.Collection(model.OrderCollection)}
}

var _ repository.OrderRepository = (*OrderMongo)(nil)

// Save upserts the order document keyed by its _id.
func (r *OrderMongo) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	filter := bson.M{"_id": order.ID}
	_, err := r.coll.ReplaceOne(ctx, filter, order, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	out := *order
	return &out, nil
}

// FindByID fetches a single order by its document ID.
func (r *OrderMongo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest-first with limit/offset and a total count.
func (r *OrderMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "dateTimeOfSubmission", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(pq.Limit)).
		SetSkip(int64(pq.Offset))
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]model.Order, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Order]{
		Items: items,
		Total: int(total),
	}, nil
}

// Delete removes an order by ID. Missing documents are not an error.
func (r *OrderMongo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
