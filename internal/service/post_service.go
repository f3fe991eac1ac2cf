package service

import (
	"Commons/internal/api/config"
	"Commons/internal/model"
	"Commons/internal/pkg/consts"
	"Commons/internal/pkg/postcodec"
	"Commons/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

type PostService interface {
	GetPosts(ctx context.Context, orgID string, filter model.ViewFilter, limit int) ([]*model.Post, error)
	GetPost(ctx context.Context, postID string) (*model.Post, error)
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	statsRepo repository.QueryStatsRepo
	timeout   time.Duration
	retries   int
	backoff   time.Duration
}

func NewPostService(postRepo repository.PostRepo, statsRepo repository.QueryStatsRepo, cfg config.QueryConfig) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		statsRepo: statsRepo,
		timeout:   time.Duration(cfg.TimeoutMs) * time.Millisecond,
		retries:   max(cfg.MaxRetries, 0),
		backoff:   time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
	}
}

// GetPosts 获取组织帖子
func (s *postServiceImpl) GetPosts(ctx context.Context, orgID string, filter model.ViewFilter, limit int) ([]*model.Post, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, ErrParamInvalid
	}
	if filter == "" {
		filter = model.ViewAll
	}
	limit = normalizeLimit(limit)

	var posts []*model.Post
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		posts, err = s.fetchOrgPosts(ctx, orgID, limit)
		return err
	})
	if err != nil {
		s.record(ctx, consts.StatStoreError)
		log.ErrorContext(ctx, "get organization posts failed", "org_id", orgID, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	posts = FilterAndSort(posts, filter)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetPost 获取单个帖子
func (s *postServiceImpl) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, ErrParamInvalid
	}

	var post *model.Post
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		post, err = s.postRepo.GetPost(ctx, postID)
		return err
	})
	if err != nil {
		s.record(ctx, consts.StatStoreError)
		log.ErrorContext(ctx, "get post failed", "post_id", postID, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	SortMediaItems(post.MediaItems)
	return post, nil
}

// fetchOrgPosts 多路查询 -> 解析 -> 必要时全表兜底
func (s *postServiceImpl) fetchOrgPosts(ctx context.Context, orgID string, limit int) ([]*model.Post, error) {
	res, err := s.postRepo.QueryByOrganization(ctx, orgID, limit)
	if err != nil {
		return nil, err
	}
	for _, name := range res.IndexMissing {
		s.record(ctx, consts.StatIndexMissingOn+name)
	}

	posts := make([]*model.Post, 0, len(res.Records))
	seen := make(map[string]struct{}, len(res.Records))
	for _, rec := range res.Records {
		post := postcodec.DecodePost(rec.ID, rec.Doc)
		if post == nil {
			continue
		}
		seen[post.ID] = struct{}{}
		posts = append(posts, post)
	}

	if len(res.Records) > 0 && !res.PrimaryIndexMissing {
		return posts, nil
	}

	s.record(ctx, consts.StatFallbackScan)
	log.InfoContext(ctx, "falling back to post scan",
		"org_id", orgID,
		"targeted", len(res.Records),
		"primary_index_missing", res.PrimaryIndexMissing,
	)
	scanned, err := s.postRepo.ScanByOrganization(ctx, orgID, limit)
	if err != nil {
		return nil, err
	}
	for _, post := range scanned {
		if _, ok := seen[post.ID]; ok {
			continue
		}
		seen[post.ID] = struct{}{}
		posts = append(posts, post)
	}
	return posts, nil
}

// withRetry 读操作天然幂等，超时与重试只针对存储层错误
func (s *postServiceImpl) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			s.record(ctx, consts.StatRetry)
			log.WarnContext(ctx, "retrying post read", "attempt", attempt, "err", err)
			select {
			case <-ctx.Done():
				return err
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}

		callCtx, cancel := s.callContext(ctx)
		err = fn(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (s *postServiceImpl) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// record 统计写入失败不影响主流程
func (s *postServiceImpl) record(ctx context.Context, field string) {
	if s.statsRepo == nil {
		return
	}
	if err := s.statsRepo.Incr(ctx, field); err != nil && !errors.Is(err, context.Canceled) {
		log.WarnContext(ctx, "record post query stat failed", "field", field, "err", err)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return consts.DefaultPostLimit
	}
	if limit > consts.MaxPostLimit {
		return consts.MaxPostLimit
	}
	return limit
}
