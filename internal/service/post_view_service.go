package service

import (
	"Commons/internal/api/dto"
	"Commons/internal/model"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// URLResolver 将存储对象 key 转为可访问地址
type URLResolver func(ctx context.Context, key string) (string, error)

type PostViewService interface {
	ListOrganizationPosts(ctx context.Context, orgID string, query *dto.PostListDTO) (*dto.PostListResultDTO, error)
	GetPostDetail(ctx context.Context, postID string) (*dto.PostDTO, error)
}

type postViewServiceImpl struct {
	postSvc    PostService
	resolveURL URLResolver
}

func NewPostViewService(postSvc PostService, resolveURL URLResolver) PostViewService {
	return &postViewServiceImpl{
		postSvc:    postSvc,
		resolveURL: resolveURL,
	}
}

// ListOrganizationPosts 组织主页帖子列表
func (s *postViewServiceImpl) ListOrganizationPosts(ctx context.Context, orgID string, query *dto.PostListDTO) (*dto.PostListResultDTO, error) {
	filter, ok := model.ParseViewFilter(query.Filter)
	if !ok {
		return nil, ErrParamInvalid
	}

	posts, err := s.postSvc.GetPosts(ctx, orgID, filter, query.Limit)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := s.toPostDTO(ctx, post)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	return &dto.PostListResultDTO{
		List:   list,
		Filter: string(filter),
		Total:  len(list),
	}, nil
}

// GetPostDetail 帖子详情
func (s *postViewServiceImpl) GetPostDetail(ctx context.Context, postID string) (*dto.PostDTO, error) {
	post, err := s.postSvc.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.toPostDTO(ctx, post)
}

// toPostDTO 将 Model 转换为返回给前端的 DTO
func (s *postViewServiceImpl) toPostDTO(ctx context.Context, post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	if err := copier.Copy(&out.Medias, &post.MediaItems); err != nil {
		return nil, err
	}
	out.CreatedAt = post.CreatedAt.Format(time.DateTime)
	if out.Medias == nil {
		out.Medias = []*dto.MediaItemDTO{}
	}

	var err error
	if out.ImageURL, err = s.resolve(ctx, post.ImageURL); err != nil {
		return nil, err
	}
	if out.VideoURL, err = s.resolve(ctx, post.VideoURL); err != nil {
		return nil, err
	}
	for _, m := range out.Medias {
		if m.URL, err = s.resolve(ctx, m.URL); err != nil {
			return nil, err
		}
		if m.ThumbnailURL != nil {
			thumb, err := s.resolve(ctx, *m.ThumbnailURL)
			if err != nil {
				return nil, err
			}
			m.ThumbnailURL = &thumb
		}
	}
	return out, nil
}

func (s *postViewServiceImpl) resolve(ctx context.Context, key string) (string, error) {
	if key == "" || s.resolveURL == nil {
		return key, nil
	}
	url, err := s.resolveURL(ctx, key)
	if err != nil {
		return "", UnExpectedError
	}
	return url, nil
}
