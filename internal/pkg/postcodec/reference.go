package postcodec

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefKind 关联字段的存储形态
type RefKind int

const (
	RefNone   RefKind = iota
	RefNative         // DBRef / DBPointer
	RefPath           // "nonprofits/<id>"
	RefBareID         // "<id>"
)

func (k RefKind) String() string {
	switch k {
	case RefNative:
		return "native"
	case RefPath:
		return "path"
	case RefBareID:
		return "bare_id"
	}
	return "none"
}

type refStrategy struct {
	kind    RefKind
	resolve func(v any) (string, bool)
}

// refStrategies 按优先级排列，首个命中即返回
var refStrategies = []refStrategy{
	{kind: RefNative, resolve: resolveNative},
	{kind: RefPath, resolve: resolvePath},
	{kind: RefBareID, resolve: resolveBareID},
}

// ResolveReference 从关联字段中取出被引用实体的 ID，无法解析时 ok 为 false
func ResolveReference(v any) (id string, kind RefKind, ok bool) {
	if v == nil {
		return "", RefNone, false
	}
	for _, s := range refStrategies {
		if id, ok = s.resolve(v); ok {
			return id, s.kind, true
		}
	}
	return "", RefNone, false
}

// ResolveID 同 ResolveReference，返回指针便于直接赋值给可选字段
func ResolveID(v any) *string {
	id, _, ok := ResolveReference(v)
	if !ok {
		return nil
	}
	return &id
}

func resolveNative(v any) (string, bool) {
	switch ref := v.(type) {
	case primitive.DBPointer:
		if ref.Pointer.IsZero() {
			return "", false
		}
		return ref.Pointer.Hex(), true
	case primitive.M:
		return dbRefID(ref["$ref"], ref["$id"])
	case map[string]any:
		return dbRefID(ref["$ref"], ref["$id"])
	case primitive.D:
		var coll, id any
		for _, e := range ref {
			switch e.Key {
			case "$ref":
				coll = e.Value
			case "$id":
				id = e.Value
			}
		}
		return dbRefID(coll, id)
	}
	return "", false
}

func dbRefID(coll, id any) (string, bool) {
	if c, ok := coll.(string); !ok || c == "" {
		return "", false
	}
	switch v := id.(type) {
	case primitive.ObjectID:
		if v.IsZero() {
			return "", false
		}
		return v.Hex(), true
	case string:
		return lastSegment(v)
	}
	return "", false
}

func resolvePath(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || !strings.Contains(s, "/") {
		return "", false
	}
	return lastSegment(s)
}

func resolveBareID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		id = strings.TrimSpace(id)
		if id == "" || strings.Contains(id, "/") {
			return "", false
		}
		return id, true
	case primitive.ObjectID:
		if id.IsZero() {
			return "", false
		}
		return id.Hex(), true
	}
	return "", false
}

// lastSegment 末段为空（如 "nonprofits/"）视为无法解析
func lastSegment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = s[strings.LastIndex(s, "/")+1:]
	if s == "" {
		return "", false
	}
	return s, true
}

// PathFor 组织引用的路径字符串形态
func PathFor(collection, id string) string {
	return collection + "/" + id
}
