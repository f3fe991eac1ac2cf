package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
)

// PostsCollection 帖子集合
const PostsCollection = "posts"

// 查询依赖的索引名
const (
	IndexNonprofitRef     = "nonprofit.$id_1_created_time_-1"
	IndexNonprofit        = "nonprofit_1_created_time_-1"
	IndexCommunityCreated = "community_1_created_time_-1__id_-1"
	IndexCreated          = "created_time_-1"
)

// RequiredIndexes 帖子查询需要的全部索引
var RequiredIndexes = []string{
	IndexNonprofitRef,
	IndexNonprofit,
	IndexCommunityCreated,
	IndexCreated,
}

// FieldQuery 单字段等值查询，Values 多于一个时按 $in 处理
type FieldQuery struct {
	Name   string
	Field  string
	Values []any
	Sort   bson.D
	Hint   string
	Limit  int
}

// Filter 转换为 mongo 过滤条件
func (q FieldQuery) Filter() bson.M {
	if len(q.Values) == 1 {
		return bson.M{q.Field: q.Values[0]}
	}
	return bson.M{q.Field: bson.M{"$in": q.Values}}
}
