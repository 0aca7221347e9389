package service

import (
	"context"
	"time"

	"github.com/haierkeys/link-moodboard-service/internal/dto"
	"github.com/haierkeys/link-moodboard-service/pkg/code"
	"github.com/haierkeys/link-moodboard-service/pkg/linkmeta"
	"github.com/haierkeys/link-moodboard-service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PreviewService 页面元数据抓取服务
type PreviewService interface {
	// Fetch 抓取 rawURL 的元数据，不落库
	Fetch(ctx context.Context, rawURL string) (*dto.PreviewDTO, error)
}

// previewService 实现 PreviewService
// 相同 URL 的并发抓取通过 singleflight 合并为一次请求
type previewService struct {
	extractor *linkmeta.Extractor
	sf        *singleflight.Group
	logger    *zap.Logger
}

// NewPreviewService 创建 PreviewService 实例
func NewPreviewService(cfg *PreviewServiceConfig, lg *zap.Logger) PreviewService {
	return &previewService{
		extractor: linkmeta.NewExtractor(
			time.Duration(cfg.FetchTimeout)*time.Second,
			cfg.UserAgent,
			cfg.MaxBodySize,
		),
		sf:     &singleflight.Group{},
		logger: lg,
	}
}

// Fetch 抓取元数据
func (s *previewService) Fetch(ctx context.Context, rawURL string) (*dto.PreviewDTO, error) {
	start := time.Now()

	v, err, shared := s.sf.Do(rawURL, func() (interface{}, error) {
		return s.extractor.Extract(ctx, rawURL)
	})
	if err != nil {
		if errors.Is(err, linkmeta.ErrInvalidURL) {
			return nil, code.ErrorInvalidURL
		}
		s.logger.Warn("preview fetch failed",
			zap.String(logger.FieldURL, rawURL),
			zap.Duration(logger.FieldDuration, time.Since(start)),
			zap.Error(err))
		return nil, code.ErrorPreviewFetchFailed.WithDetails(err.Error())
	}

	meta := v.(*linkmeta.Metadata)

	s.logger.Debug("preview fetched",
		zap.String(logger.FieldURL, rawURL),
		zap.Bool("shared", shared),
		zap.Duration(logger.FieldDuration, time.Since(start)))

	return &dto.PreviewDTO{
		Title:       meta.Title,
		Description: meta.Description,
		ImageURL:    meta.ImageURL,
		URL:         meta.URL,
		SourceURL:   meta.SourceURL,
	}, nil
}
