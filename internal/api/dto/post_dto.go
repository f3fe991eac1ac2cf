package dto

// PostDTO 帖子
type PostDTO struct {
	ID             string  `json:"id"`
	Caption        string  `json:"caption"`
	CreatedAt      string  `json:"created_at" copier:"-"`
	OrganizationID *string `json:"organization_id"`
	AuthorUserID   *string `json:"author_user_id"`
	CommunityID    *string `json:"community_id"`

	IsMembersOnly         bool `json:"is_members_only"`
	IsForBroaderEcosystem bool `json:"is_for_broader_ecosystem"`

	ImageURL string `json:"image_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	IsVideo  bool   `json:"is_video"`

	MediaType string          `json:"media_type,omitempty"`
	Medias    []*MediaItemDTO `json:"media_items"`

	NumLikes           int     `json:"num_likes"`
	NumComments        int     `json:"num_comments"`
	BackgroundColorHex *string `json:"background_color_hex,omitempty"`
}

// MediaItemDTO 媒体
type MediaItemDTO struct {
	ID             string  `json:"id"`
	URL            string  `json:"url"`
	Type           string  `json:"type"`
	Order          int     `json:"order"`
	ThumbnailURL   *string `json:"thumbnail_url,omitempty"`
	ThumbnailColor *string `json:"thumbnail_color,omitempty"`
}

// PostListDTO 组织帖子列表查询参数
type PostListDTO struct {
	Filter string `form:"filter" validate:"omitempty,oneof=all members media"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// PostListResultDTO 组织帖子列表
type PostListResultDTO struct {
	List   []*PostDTO `json:"list"`
	Filter string     `json:"filter"`
	Total  int        `json:"total"`
}
