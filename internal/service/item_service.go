package service

import (
	"context"

	"github.com/haierkeys/link-moodboard-service/internal/domain"
	"github.com/haierkeys/link-moodboard-service/internal/dto"
	"github.com/haierkeys/link-moodboard-service/pkg/app"
	"github.com/haierkeys/link-moodboard-service/pkg/code"
	"github.com/haierkeys/link-moodboard-service/pkg/convert"
	"github.com/haierkeys/link-moodboard-service/pkg/linkmeta"
	"github.com/haierkeys/link-moodboard-service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemService 链接条目服务，承载摄取管线
type ItemService interface {
	// Ingest 完整摄取：校验 -> 抓取元数据 -> 查重 -> 入库
	Ingest(ctx context.Context, params *dto.ItemIngestRequest) (*dto.ItemDTO, error)
	// Create 使用现成字段创建条目，跳过元数据抓取
	Create(ctx context.Context, params *dto.ItemCreateRequest) (*dto.ItemDTO, error)
	// List 按创建时间倒序分页获取条目
	List(ctx context.Context, pager *app.Pager) ([]*dto.ItemDTO, int, error)
	// UpdateNote 仅更新 note 字段，返回更新后的条目
	UpdateNote(ctx context.Context, id int64, params *dto.ItemUpdateNoteRequest) (*dto.ItemDTO, error)
	// Delete 删除条目
	Delete(ctx context.Context, id int64) error
}

// itemService 实现 ItemService
type itemService struct {
	repo    domain.ItemRepository
	preview PreviewService
	logger  *zap.Logger
}

// NewItemService 创建 ItemService 实例
func NewItemService(repo domain.ItemRepository, preview PreviewService, lg *zap.Logger) ItemService {
	return &itemService{
		repo:    repo,
		preview: preview,
		logger:  lg,
	}
}

// toDTO 领域模型转响应对象
func (s *itemService) toDTO(item *domain.Item) *dto.ItemDTO {
	d := &dto.ItemDTO{}
	convert.StructAssign(item, d)
	return d
}

// checkUnique 去重守卫：按 URL 精确匹配查重
// 命中返回 ErrorItemURLExists，查询失败返回 ErrorDBQuery，
// 查询失败时管线不会继续创建
func (s *itemService) checkUnique(ctx context.Context, rawURL string) error {
	_, err := s.repo.GetByURL(ctx, rawURL)
	if err == nil {
		return code.ErrorItemURLExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return code.ErrorDBQuery.WithDetails(err.Error())
}

// create 查重后入库，唯一索引冲突同样报告为 URL 已存在
func (s *itemService) create(ctx context.Context, item *domain.Item) (*dto.ItemDTO, error) {
	if err := s.checkUnique(ctx, item.URL); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorItemURLExists
		}
		s.logger.Error("item create failed",
			zap.String(logger.FieldURL, item.URL),
			zap.Error(err))
		return nil, code.ErrorCreateItemFail.WithDetails(err.Error())
	}

	s.logger.Info("item created",
		zap.Int64(logger.FieldItemID, created.ID),
		zap.String(logger.FieldURL, created.URL),
		zap.String(logger.FieldSourceURL, created.SourceURL))

	return s.toDTO(created), nil
}

// Ingest 完整摄取管线
// 任一阶段失败即中止，不会留下部分写入的条目
func (s *itemService) Ingest(ctx context.Context, params *dto.ItemIngestRequest) (*dto.ItemDTO, error) {
	meta, err := s.preview.Fetch(ctx, params.URL)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, &domain.Item{
		Title:       meta.Title,
		Description: meta.Description,
		ImageURL:    meta.ImageURL,
		URL:         meta.URL,
		Type:        domain.ItemTypeLink,
		SourceURL:   meta.SourceURL,
		Note:        "",
	})
}

// Create 使用抓取或手动提供的字段创建条目
// source_url 始终由 url 派生，不接受外部提供
func (s *itemService) Create(ctx context.Context, params *dto.ItemCreateRequest) (*dto.ItemDTO, error) {
	parsed, err := linkmeta.ValidateURL(params.URL)
	if err != nil {
		return nil, code.ErrorInvalidURL
	}

	itemType := params.Type
	if itemType == "" {
		itemType = domain.ItemTypeLink
	}

	return s.create(ctx, &domain.Item{
		Title:       params.Title,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		URL:         params.URL,
		Type:        itemType,
		SourceURL:   parsed.Hostname(),
		Note:        params.Note,
	})
}

// List 分页获取条目
func (s *itemService) List(ctx context.Context, pager *app.Pager) ([]*dto.ItemDTO, int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	offset := app.GetPageOffset(pager.Page, pager.PageSize)
	items, err := s.repo.List(ctx, pager.PageSize, offset)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	list := make([]*dto.ItemDTO, 0, len(items))
	for _, item := range items {
		list = append(list, s.toDTO(item))
	}
	return list, int(count), nil
}

// UpdateNote 仅更新 note 字段
func (s *itemService) UpdateNote(ctx context.Context, id int64, params *dto.ItemUpdateNoteRequest) (*dto.ItemDTO, error) {
	if err := s.repo.UpdateNote(ctx, id, params.Note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorItemNotFound
		}
		return nil, code.ErrorUpdateItemFail.WithDetails(err.Error())
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.toDTO(updated), nil
}

// Delete 删除条目
func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorItemNotFound
		}
		return code.ErrorDeleteItemFail.WithDetails(err.Error())
	}

	s.logger.Info("item deleted", zap.Int64(logger.FieldItemID, id))
	return nil
}
