package repository

import (
	"Commons/internal/model"
	"Commons/internal/pkg/mongo"
	"Commons/internal/pkg/postcodec"
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// FallbackScanFactor 兜底扫描的超额拉取倍数
const FallbackScanFactor = 5

// 组织帖子查询的名称
const (
	QueryReference = "reference"
	QueryPath      = "path"
	QueryBareID    = "bare_id"
	QueryCommunity = "community"
)

// RawPost 原始帖子文档
type RawPost struct {
	ID  string
	Doc bson.M
}

// OrgQueryResult 多路查询合并结果
type OrgQueryResult struct {
	Records []RawPost
	// IndexMissing 因缺少索引而失败的查询
	IndexMissing []string
	// PrimaryIndexMissing 前三路查询中存在缺少索引的情况
	PrimaryIndexMissing bool
}

type PostRepo interface {
	QueryByOrganization(ctx context.Context, orgID string, limit int) (*OrgQueryResult, error)
	ScanByOrganization(ctx context.Context, orgID string, limit int) ([]*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
}

type orgQuery struct {
	name    string
	primary bool
	build   func(orgID string, limit int) mongo.FieldQuery
}

var byRecency = bson.D{{Key: postcodec.FieldCreatedTime, Value: -1}}

// orgQueries 组织关联的四种历史存储形态，顺序即合并优先级
var orgQueries = []orgQuery{
	{name: QueryReference, primary: true, build: referenceQuery},
	{name: QueryPath, primary: true, build: pathQuery},
	{name: QueryBareID, primary: true, build: bareIDQuery},
	{name: QueryCommunity, primary: false, build: communityQuery},
}

func referenceQuery(orgID string, limit int) mongo.FieldQuery {
	values := []any{orgID}
	if oid, err := primitive.ObjectIDFromHex(orgID); err == nil {
		values = append(values, oid)
	}
	return mongo.FieldQuery{
		Name:   QueryReference,
		Field:  postcodec.FieldNonprofit + ".$id",
		Values: values,
		Sort:   byRecency,
		Limit:  limit,
	}
}

func pathQuery(orgID string, limit int) mongo.FieldQuery {
	path := postcodec.PathFor(postcodec.NonprofitCollection, orgID)
	return mongo.FieldQuery{
		Name:   QueryPath,
		Field:  postcodec.FieldNonprofit,
		Values: []any{path, "/" + path},
		Sort:   byRecency,
		Limit:  limit,
	}
}

func bareIDQuery(orgID string, limit int) mongo.FieldQuery {
	return mongo.FieldQuery{
		Name:   QueryBareID,
		Field:  postcodec.FieldNonprofit,
		Values: []any{orgID},
		Sort:   byRecency,
		Limit:  limit,
	}
}

func communityQuery(orgID string, limit int) mongo.FieldQuery {
	return mongo.FieldQuery{
		Name:   QueryCommunity,
		Field:  postcodec.FieldCommunity,
		Values: []any{orgID},
		Sort: bson.D{
			{Key: postcodec.FieldCreatedTime, Value: -1},
			{Key: postcodec.FieldID, Value: -1},
		},
		Hint:  mongo.IndexCommunityCreated,
		Limit: limit,
	}
}

type postRepoImpl struct {
	docs mongo.PostDocRepo
}

func NewPostRepo(docs mongo.PostDocRepo) PostRepo {
	return &postRepoImpl{
		docs: docs,
	}
}

type queryOutcome struct {
	docs []bson.M
	err  error
}

// QueryByOrganization 并发执行四路查询并按文档 ID 去重合并。
// 前三路必须全部完成，非缺索引错误直接返回；第四路失败只记为空结果。
func (s *postRepoImpl) QueryByOrganization(ctx context.Context, orgID string, limit int) (*OrgQueryResult, error) {
	outcomes := make([]queryOutcome, len(orgQueries))

	// 第四路不受前三路错误取消，但返回前必须结束
	secondaryCtx, cancelSecondary := context.WithCancel(ctx)
	defer cancelSecondary()
	secondaryDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range orgQueries {
		fq := q.build(orgID, limit)
		if !q.primary {
			go func() {
				defer close(secondaryDone)
				docs, err := s.docs.Find(secondaryCtx, fq)
				outcomes[i] = queryOutcome{docs: docs, err: err}
			}()
			continue
		}
		g.Go(func() error {
			docs, err := s.docs.Find(gctx, fq)
			if err != nil && !mongo.IsIndexMissing(err) {
				return err
			}
			outcomes[i] = queryOutcome{docs: docs, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cancelSecondary()
		<-secondaryDone
		log.ErrorContext(ctx, "organization post query failed", "org_id", orgID, "err", err)
		return nil, err
	}
	<-secondaryDone

	result := &OrgQueryResult{}
	seen := make(map[string]struct{})
	for i, q := range orgQueries {
		out := outcomes[i]
		if out.err != nil {
			if mongo.IsIndexMissing(out.err) {
				log.WarnContext(ctx, "post query index missing", "query", q.name, "org_id", orgID, "err", out.err)
				result.IndexMissing = append(result.IndexMissing, q.name)
				if q.primary {
					result.PrimaryIndexMissing = true
				}
			} else {
				log.WarnContext(ctx, "secondary post query failed", "query", q.name, "org_id", orgID, "err", out.err)
			}
			continue
		}
		for _, doc := range out.docs {
			id := postcodec.DocumentID(doc)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result.Records = append(result.Records, RawPost{ID: id, Doc: doc})
		}
	}

	return result, nil
}

// ScanByOrganization 按时间倒序扫描最近 limit*5 条，客户端过滤组织
func (s *postRepoImpl) ScanByOrganization(ctx context.Context, orgID string, limit int) ([]*model.Post, error) {
	docs, err := s.docs.FindRecent(ctx, limit*FallbackScanFactor)
	if err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0)
	for _, doc := range docs {
		post := postcodec.DecodePost(postcodec.DocumentID(doc), doc)
		if post == nil || post.OrgID() != orgID {
			continue
		}
		posts = append(posts, post)
	}

	log.InfoContext(ctx, "fallback post scan finished",
		"org_id", orgID,
		"scanned", len(docs),
		"matched", len(posts),
	)
	return posts, nil
}

// GetPost 单条读取，不存在或无法解析时返回 nil
func (s *postRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return postcodec.DecodePost(id, doc), nil
}
