package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostDocRepo posts 集合的只读访问
type PostDocRepo interface {
	Find(ctx context.Context, q FieldQuery) ([]bson.M, error)
	FindRecent(ctx context.Context, limit int) ([]bson.M, error)
	FindByID(ctx context.Context, id string) (bson.M, error)
	ListIndexNames(ctx context.Context) ([]string, error)
}

type postDocRepoImpl struct {
	col *mongo.Collection
}

func NewPostDocRepo(db *mongo.Database) PostDocRepo {
	return &postDocRepoImpl{
		col: db.Collection(PostsCollection),
	}
}

// Find 按字段等值查询
func (s *postDocRepoImpl) Find(ctx context.Context, q FieldQuery) ([]bson.M, error) {
	opts := options.Find().SetLimit(int64(q.Limit))
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Hint != "" {
		opts.SetHint(q.Hint)
	}

	cursor, err := s.col.Find(ctx, q.Filter(), opts)
	if err != nil {
		return nil, classify(err, "find posts by "+q.Name)
	}
	return drain(ctx, cursor, "find posts by "+q.Name)
}

// FindRecent 全集合按时间倒序扫描
func (s *postDocRepoImpl) FindRecent(ctx context.Context, limit int) ([]bson.M, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_time", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, classify(err, "scan recent posts")
	}
	return drain(ctx, cursor, "scan recent posts")
}

// FindByID 主键可能是字符串也可能是 ObjectID，不存在时返回 nil, nil
func (s *postDocRepoImpl) FindByID(ctx context.Context, id string) (bson.M, error) {
	ids := bson.A{id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		ids = append(ids, oid)
	}

	var doc bson.M
	err := s.col.FindOne(ctx, bson.M{"_id": bson.M{"$in": ids}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, classify(err, "find post by id")
	}
	return doc, nil
}

// ListIndexNames 列出集合现有索引名
func (s *postDocRepoImpl) ListIndexNames(ctx context.Context) ([]string, error) {
	specs, err := s.col.Indexes().ListSpecifications(ctx)
	if err != nil {
		return nil, classify(err, "list post indexes")
	}
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names, nil
}

func drain(ctx context.Context, cursor *mongo.Cursor, op string) ([]bson.M, error) {
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classify(err, op)
	}
	return docs, nil
}
