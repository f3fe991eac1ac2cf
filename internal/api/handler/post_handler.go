package handler

import (
	"Commons/internal/api/dto"
	"Commons/internal/pkg/response"
	"Commons/internal/pkg/util"
	"Commons/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postViewSvc service.PostViewService
}

func NewPostHandler(postViewSvc service.PostViewService) *PostHandler {
	return &PostHandler{
		postViewSvc: postViewSvc,
	}
}

// ListOrganizationPosts 组织主页帖子列表
func (s *PostHandler) ListOrganizationPosts(c *gin.Context) {
	orgID := strings.TrimSpace(c.Param("org_id"))
	if orgID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var query dto.PostListDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	result, err := s.postViewSvc.ListOrganizationPosts(c.Request.Context(), orgID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPost 帖子详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("post_id"))
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postViewSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
