package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostFilter 列表/计数的查询条件，nil 字段表示不限制
type PostFilter struct {
	Status      string
	AIGenerated *bool
	NewsDigest  *bool
}

func (f PostFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.AIGenerated != nil {
		filter["ai_generated"] = *f.AIGenerated
	}
	if f.NewsDigest != nil {
		filter["news_digest"] = *f.NewsDigest
	}
	return filter
}

type PostRepo interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*Post, error)
	List(ctx context.Context, f PostFilter, page, pageSize int) ([]*Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
	Update(ctx context.Context, post *Post) error
	DeleteByID(ctx context.Context, id string) (*Post, error)
	FindDigestSince(ctx context.Context, since time.Time) (*Post, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("blog_posts"),
	}
}

// EnsureIndexes 建立 slug 唯一索引与列表查询用的复合索引
func (s *postRepoImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: -1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "news_digest", Value: 1}, {Key: "date", Value: -1}},
		},
	})
	return err
}

// Create 插入新帖子，slug 冲突由唯一索引拒绝
func (s *postRepoImpl) Create(ctx context.Context, post *Post) error {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

func (s *postRepoImpl) GetByID(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var post Post
	if err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*Post, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["status"] = StatusPublished
	}
	var post Post
	if err := s.col.FindOne(ctx, filter).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// List 按发布时间倒序分页
func (s *postRepoImpl) List(ctx context.Context, f PostFilter, page, pageSize int) ([]*Post, error) {
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.col.Find(ctx, f.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*Post
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *postRepoImpl) Count(ctx context.Context, f PostFilter) (int64, error) {
	return s.col.CountDocuments(ctx, f.toBSON())
}

// Update 整篇替换
func (s *postRepoImpl) Update(ctx context.Context, post *Post) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *postRepoImpl) DeleteByID(ctx context.Context, id string) (*Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var post Post
	if err = s.col.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FindDigestSince 查找发布时间不早于 since 的摘要帖，未命中返回 (nil, nil)
func (s *postRepoImpl) FindDigestSince(ctx context.Context, since time.Time) (*Post, error) {
	filter := bson.M{
		"news_digest": true,
		"date":        bson.M{"$gte": since},
	}
	var post Post
	err := s.col.FindOne(ctx, filter).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IsDup 判断是否 slug 唯一索引冲突
func IsDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// ErrNoDocuments 供上层判断未命中
var ErrNoDocuments = mongo.ErrNoDocuments
