package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProvider serves records straight from a MongoDB collection. Totals
// come from CountDocuments and the page window from Find with skip/limit,
// so only the records of the current page are loaded.
type MongoProvider struct {
	coll   *mongo.Collection
	filter any

	// fields maps sort attribute names to document field names. Unmapped
	// attributes sort on the field of the same name.
	fields map[string]string

	keyField   string
	pagination *Pagination
	sortState  *Sort

	total  int
	counts bool
}

// MongoOption configures a MongoProvider at construction time.
type MongoOption func(*MongoProvider)

// WithFilter restricts the provider to documents matching the filter.
func WithFilter(filter any) MongoOption {
	return func(mp *MongoProvider) { mp.filter = filter }
}

// WithFieldMap maps sort attribute names to document field names.
func WithFieldMap(fields map[string]string) MongoOption {
	return func(mp *MongoProvider) { mp.fields = fields }
}

// WithMongoKeyField selects the document field used as item key.
// The default is _id.
func WithMongoKeyField(name string) MongoOption {
	return func(mp *MongoProvider) { mp.keyField = name }
}

// WithMongoPagination attaches a pagination window.
func WithMongoPagination(p Pagination) MongoOption {
	return func(mp *MongoProvider) { mp.pagination = &p }
}

// WithMongoSort attaches a sort descriptor.
func WithMongoSort(s Sort) MongoOption {
	return func(mp *MongoProvider) { mp.sortState = &s }
}

// NewMongoProvider builds a provider over the given collection.
func NewMongoProvider(coll *mongo.Collection, opts ...MongoOption) *MongoProvider {
	mp := &MongoProvider{
		coll:     coll,
		filter:   bson.M{},
		keyField: "_id",
	}
	for _, opt := range opts {
		opt(mp)
	}
	return mp
}

func (mp *MongoProvider) Items(ctx context.Context) ([]any, error) {
	total, err := mp.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	if mp.pagination != nil {
		mp.pagination.TotalCount = total
	}

	findOpts := options.Find()
	if mp.pagination != nil {
		findOpts.SetSkip(int64(mp.pagination.Offset()))
		if limit := mp.pagination.Limit(); limit >= 0 {
			findOpts.SetLimit(int64(limit))
		}
	}
	if mp.sortState != nil {
		if orders := mp.sortState.AttributeOrders(); len(orders) > 0 {
			sortDoc := bson.D{}
			for _, o := range orders {
				dir := 1
				if o.Direction == Desc {
					dir = -1
				}
				sortDoc = append(sortDoc, bson.E{Key: mp.fieldFor(o.Name), Value: dir})
			}
			findOpts.SetSort(sortDoc)
		}
	}

	cur, err := mp.coll.Find(ctx, mp.filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]any, len(docs))
	for i, doc := range docs {
		items[i] = map[string]any(doc)
	}
	return items, nil
}

func (mp *MongoProvider) Keys(items []any) []string {
	keys := make([]string, len(items))
	for i, item := range items {
		v := Attr(item, mp.keyField)
		if id, ok := v.(primitive.ObjectID); ok {
			keys[i] = id.Hex()
		} else {
			keys[i] = stringify(v)
		}
	}
	return keys
}

// TotalCount counts matching documents once per provider; the result is
// cached for the rest of the render pass.
func (mp *MongoProvider) TotalCount(ctx context.Context) (int, error) {
	if mp.counts {
		return mp.total, nil
	}
	n, err := mp.coll.CountDocuments(ctx, mp.filter)
	if err != nil {
		return 0, err
	}
	mp.total = int(n)
	mp.counts = true
	return mp.total, nil
}

func (mp *MongoProvider) Pagination() *Pagination { return mp.pagination }
func (mp *MongoProvider) Sort() *Sort             { return mp.sortState }

func (mp *MongoProvider) fieldFor(attribute string) string {
	if field, ok := mp.fields[attribute]; ok {
		return field
	}
	return attribute
}
