package service

import (
	"Commons/internal/model"
	"sort"
)

// FilterAndSort 按视图过滤并按创建时间倒序稳定排序
func FilterAndSort(posts []*model.Post, filter model.ViewFilter) []*model.Post {
	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		SortMediaItems(p.MediaItems)
		switch filter {
		case model.ViewMembers:
			if !p.IsMembersOnly {
				continue
			}
		case model.ViewMedia:
			p.MediaItems = dropEmptyMedia(p.MediaItems)
			if !p.HasMedia() {
				continue
			}
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortMediaItems 按 order 升序，相同 order 保持原数组顺序
func SortMediaItems(items []*model.MediaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}

func dropEmptyMedia(items []*model.MediaItem) []*model.MediaItem {
	kept := make([]*model.MediaItem, 0, len(items))
	for _, m := range items {
		if m.URL != "" {
			kept = append(kept, m)
		}
	}
	return kept
}
