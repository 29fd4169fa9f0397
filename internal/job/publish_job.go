package job

import (
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/pkg/logger"
	"Solarium/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PublishJob 将到期的定时发布页面置为已发布，并失效对应缓存
type PublishJob struct {
	pageRepo repository.PageRepo
	store    cache.Cache
}

func NewPublishJob(pageRepo repository.PageRepo, store cache.Cache) *PublishJob {
	return &PublishJob{
		pageRepo: pageRepo,
		store:    store,
	}
}

func (s *PublishJob) Run() {
	traceID := "job-publish-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	pages, err := s.pageRepo.ListScheduledDue(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "list scheduled pages error", "err", err)
		return
	}

	for _, page := range pages {
		if err := s.pageRepo.UpdateStatus(ctx, page.ID, consts.PageStatusPublished); err != nil {
			log.ErrorContext(ctx, "publish scheduled page error", "page_id", page.ID, "err", err)
			continue
		}

		cache.InvalidatePage(ctx, s.store, page.Slug)
		log.InfoContext(ctx, "scheduled page published", "page_id", page.ID, "slug", page.Slug)
	}
}
