package postcodec

import (
	"Commons/internal/model"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeMedia 将新版 media 数组或旧版平铺字段统一为有序的媒体列表。
// 不会丢弃 url 为空的条目，过滤交由视图层处理。
func NormalizeMedia(postID string, doc primitive.M) (model.MediaType, []*model.MediaItem) {
	if entries, ok := asArray(doc[FieldMedia]); ok && len(entries) > 0 {
		items := make([]*model.MediaItem, 0, len(entries))
		for i, entry := range entries {
			items = append(items, normalizeItem(postID, i, entry))
		}
		return mediaTypeOf(doc, items), items
	}
	return normalizeLegacy(postID, doc)
}

func normalizeItem(postID string, index int, entry any) *model.MediaItem {
	item := &model.MediaItem{
		ID:    itemID(postID, index),
		Type:  model.MediaTypeImage,
		Order: index,
	}
	raw, ok := asDoc(entry)
	if !ok {
		return item
	}

	if id := str(raw, FieldItemID); id != "" {
		item.ID = id
	}
	if strings.EqualFold(str(raw, FieldMediaType), "video") {
		item.Type = model.MediaTypeVideo
	}

	if item.Type == model.MediaTypeVideo {
		item.URL = str(raw, FieldVideoURL)
		item.ThumbnailURL = optStr(raw, FieldItemThumbnail)
		if item.ThumbnailURL == nil {
			item.ThumbnailURL = optStr(raw, FieldImageURL)
		}
	} else {
		item.URL = str(raw, FieldImageURL)
	}
	if item.URL == "" {
		item.URL = str(raw, FieldItemURL)
	}

	if order, ok := integer(raw[FieldItemOrder]); ok {
		item.Order = order
	}
	item.ThumbnailColor = optStr(raw, FieldItemThumbColor)
	return item
}

func mediaTypeOf(doc primitive.M, items []*model.MediaItem) model.MediaType {
	if t, ok := model.ParseMediaType(str(doc, FieldMediaType)); ok {
		return t
	}
	switch {
	case len(items) > 1:
		return model.MediaTypeCarousel
	case len(items) == 1 && items[0].Type == model.MediaTypeVideo:
		return model.MediaTypeVideo
	default:
		return model.MediaTypeImage
	}
}

func normalizeLegacy(postID string, doc primitive.M) (model.MediaType, []*model.MediaItem) {
	videoURL := str(doc, FieldVideoURL)
	imageURL := str(doc, FieldImageURL)

	switch {
	case videoURL != "":
		return model.MediaTypeVideo, []*model.MediaItem{{
			ID:           itemID(postID, 0),
			URL:          videoURL,
			Type:         model.MediaTypeVideo,
			ThumbnailURL: optStr(doc, FieldImageURL),
		}}
	case imageURL != "":
		return model.MediaTypeImage, []*model.MediaItem{{
			ID:   itemID(postID, 0),
			URL:  imageURL,
			Type: model.MediaTypeImage,
		}}
	}
	return model.MediaTypeUndefined, []*model.MediaItem{}
}

func itemID(postID string, index int) string {
	return fmt.Sprintf("%s_%d", postID, index)
}
