package postcodec

import (
	"Commons/internal/model"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NonprofitCollection 组织集合名，用于路径形态的引用
const NonprofitCollection = "nonprofits"

// minPlausibleIDLength 文档 ID 前缀被视为组织 ID 的最小长度
const minPlausibleIDLength = 15

type orgStrategy struct {
	name    string
	resolve func(docID string, doc primitive.M) (string, bool)
}

// orgStrategies 组织 ID 的解析顺序
var orgStrategies = []orgStrategy{
	{name: "primary", resolve: orgFromPrimary},
	{name: "flat_id", resolve: orgFromFlatID},
	{name: "community_bare", resolve: orgFromCommunity},
	{name: "doc_id_prefix", resolve: orgFromDocIDPrefix},
}

// ResolveOrganization 依次尝试各策略，返回组织 ID 及命中的策略名
func ResolveOrganization(docID string, doc primitive.M) (orgID string, strategy string, ok bool) {
	for _, s := range orgStrategies {
		if orgID, ok = s.resolve(docID, doc); ok {
			return orgID, s.name, true
		}
	}
	return "", "", false
}

func orgFromPrimary(_ string, doc primitive.M) (string, bool) {
	id, _, ok := ResolveReference(doc[FieldNonprofit])
	return id, ok
}

func orgFromFlatID(_ string, doc primitive.M) (string, bool) {
	return resolveBareID(doc[FieldNonprofitID])
}

// orgFromCommunity 把社区字段当作组织 ID，没有任何校验。
// TODO: 存量数据补齐 nonprofit 字段后删除该兜底
func orgFromCommunity(_ string, doc primitive.M) (string, bool) {
	return resolveBareID(doc[FieldCommunity])
}

// orgFromDocIDPrefix 旧导入器生成的 ID 形如 "<orgID>_<suffix>"，同样未经校验。
// TODO: 存量数据补齐 nonprofit 字段后删除该兜底
func orgFromDocIDPrefix(docID string, _ primitive.M) (string, bool) {
	prefix, _, found := strings.Cut(docID, "_")
	if !found || len(prefix) <= minPlausibleIDLength {
		return "", false
	}
	return prefix, true
}

// DecodePost 解析单条帖子文档，caption 或 created_time 缺失时返回 nil
func DecodePost(docID string, doc primitive.M) *model.Post {
	if doc == nil {
		return nil
	}
	caption, ok := doc[FieldCaption].(string)
	if !ok || strings.TrimSpace(caption) == "" {
		return nil
	}
	createdAt, ok := timestamp(doc[FieldCreatedTime])
	if !ok {
		return nil
	}
	if docID == "" {
		docID = DocumentID(doc)
	}

	post := &model.Post{
		ID:                    docID,
		Caption:               caption,
		CreatedAt:             createdAt,
		AuthorUserID:          ResolveID(doc[FieldAuthor]),
		CommunityID:           ResolveID(doc[FieldCommunity]),
		IsMembersOnly:         boolean(doc, FieldMembersOnly),
		IsForBroaderEcosystem: boolean(doc, FieldBroader),
		ImageURL:              str(doc, FieldImageURL),
		VideoURL:              str(doc, FieldVideoURL),
		IsVideo:               boolean(doc, FieldIsVideo),
		NumLikes:              counter(doc, FieldNumLikes),
		NumComments:           counter(doc, FieldNumComments),
		BackgroundColorHex:    optStr(doc, FieldBackground),
	}
	if orgID, _, ok := ResolveOrganization(docID, doc); ok {
		post.OrganizationID = &orgID
	}
	post.MediaType, post.MediaItems = NormalizeMedia(docID, doc)
	return post
}
