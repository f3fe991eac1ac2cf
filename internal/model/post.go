package model

import (
	"time"
)

// Post 组织动态
type Post struct {
	ID             string    `json:"id"`
	Caption        string    `json:"caption"`
	CreatedAt      time.Time `json:"created_at"`
	OrganizationID *string   `json:"organization_id"` // 旧数据可能无法解析出组织
	AuthorUserID   *string   `json:"author_user_id"`
	CommunityID    *string   `json:"community_id"`

	IsMembersOnly         bool `json:"is_members_only"`
	IsForBroaderEcosystem bool `json:"is_for_broader_ecosystem"`

	// 旧版单媒体字段，仅为兼容保留
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
	IsVideo  bool   `json:"is_video"`

	MediaType  MediaType    `json:"media_type"`
	MediaItems []*MediaItem `json:"media_items"`

	NumLikes           int     `json:"num_likes"`
	NumComments        int     `json:"num_comments"`
	BackgroundColorHex *string `json:"background_color_hex"`
}

// HasMedia 是否带有可展示的媒体
func (p *Post) HasMedia() bool {
	for _, m := range p.MediaItems {
		if m.URL != "" {
			return true
		}
	}
	return p.ImageURL != "" || p.VideoURL != ""
}

// OrgID 组织 ID，未解析时为空串
func (p *Post) OrgID() string {
	if p.OrganizationID == nil {
		return ""
	}
	return *p.OrganizationID
}
