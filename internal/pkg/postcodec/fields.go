package postcodec

import (
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 帖子文档字段名
const (
	FieldID             = "_id"
	FieldCaption        = "caption"
	FieldCreatedTime    = "created_time"
	FieldNonprofit      = "nonprofit"
	FieldNonprofitID    = "nonprofit_id"
	FieldCommunity      = "community"
	FieldAuthor         = "author"
	FieldMembersOnly    = "is_members_only"
	FieldBroader        = "is_for_broader_ecosystem"
	FieldImageURL       = "image_url"
	FieldVideoURL       = "video_url"
	FieldIsVideo        = "is_video"
	FieldMediaType      = "media_type"
	FieldMedia          = "media"
	FieldNumLikes       = "num_likes"
	FieldNumComments    = "num_comments"
	FieldBackground     = "background_color_hex"
	FieldItemID         = "id"
	FieldItemURL        = "url"
	FieldItemOrder      = "order"
	FieldItemThumbnail  = "thumbnail_url"
	FieldItemThumbColor = "thumbnail_color"
)

// DocumentID 取文档主键的字符串形式
func DocumentID(doc primitive.M) string {
	switch id := doc[FieldID].(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	}
	return ""
}

func asDoc(v any) (primitive.M, bool) {
	switch d := v.(type) {
	case primitive.M:
		return d, true
	case map[string]any:
		return d, true
	case primitive.D:
		return d.Map(), true
	}
	return nil, false
}

func asArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case primitive.A:
		return a, true
	case []any:
		return a, true
	case []primitive.M:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true
	}
	return nil, false
}

func str(doc primitive.M, key string) string {
	s, _ := doc[key].(string)
	return strings.TrimSpace(s)
}

func optStr(doc primitive.M, key string) *string {
	s := str(doc, key)
	if s == "" {
		return nil
	}
	return &s
}

func boolean(doc primitive.M, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

// integer 非数值返回 false
func integer(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func counter(doc primitive.M, key string) int {
	n, ok := integer(doc[key])
	if !ok || n < 0 {
		return 0
	}
	return n
}

func timestamp(v any) (time.Time, bool) {
	var t time.Time
	switch ts := v.(type) {
	case primitive.DateTime:
		t = ts.Time()
	case time.Time:
		t = ts
	case primitive.Timestamp:
		t = time.Unix(int64(ts.T), 0)
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(ts))
		if err != nil {
			return time.Time{}, false
		}
		t = parsed
	default:
		return time.Time{}, false
	}
	if t.IsZero() {
		return time.Time{}, false
	}
	return t.UTC(), true
}
