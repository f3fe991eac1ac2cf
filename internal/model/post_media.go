package model

import "strings"

type MediaType string

const (
	MediaTypeUndefined MediaType = ""
	MediaTypeImage     MediaType = "IMAGE"
	MediaTypeVideo     MediaType = "VIDEO"
	MediaTypeCarousel  MediaType = "CAROUSEL"
)

// ParseMediaType 忽略大小写匹配枚举名
func ParseMediaType(s string) (MediaType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MediaTypeImage):
		return MediaTypeImage, true
	case string(MediaTypeVideo):
		return MediaTypeVideo, true
	case string(MediaTypeCarousel):
		return MediaTypeCarousel, true
	}
	return MediaTypeUndefined, false
}

// MediaItem 帖子内单个媒体
type MediaItem struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Type           MediaType `json:"type"` // IMAGE | VIDEO
	Order          int       `json:"order"`
	ThumbnailURL   *string   `json:"thumbnail_url"` // 仅视频有效
	ThumbnailColor *string   `json:"thumbnail_color"`
}
