package dao

import (
	"context"
	"time"

	"github.com/haierkeys/link-moodboard-service/internal/domain"
	"github.com/haierkeys/link-moodboard-service/internal/model"
	"github.com/haierkeys/link-moodboard-service/pkg/timex"

	"gorm.io/gorm"
)

// itemRepository 实现 domain.ItemRepository 接口
type itemRepository struct {
	dao *Dao
}

// NewItemRepository 创建 ItemRepository 实例
func NewItemRepository(dao *Dao) domain.ItemRepository {
	return &itemRepository{dao: dao}
}

// toDomain 将持久化模型转换为领域模型
func (r *itemRepository) toDomain(m *model.Item) *domain.Item {
	if m == nil {
		return nil
	}
	return &domain.Item{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		URL:         m.URL,
		Type:        m.Type,
		SourceURL:   m.SourceURL,
		Note:        m.Note,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为持久化模型
func (r *itemRepository) toModel(item *domain.Item) *model.Item {
	if item == nil {
		return nil
	}
	return &model.Item{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		URL:         item.URL,
		Type:        item.Type,
		SourceURL:   item.SourceURL,
		Note:        item.Note,
		CreatedAt:   timex.Time(item.CreatedAt),
		UpdatedAt:   timex.Time(item.UpdatedAt),
	}
}

// Create 创建条目
// URL 唯一索引冲突由 TranslateError 翻译为 gorm.ErrDuplicatedKey
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	m := r.toModel(item)
	m.ID = 0
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据 ID 获取条目
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m model.Item
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByURL 根据 URL 精确匹配获取条目
func (r *itemRepository) GetByURL(ctx context.Context, url string) (*domain.Item, error) {
	var m model.Item
	err := r.dao.db.WithContext(ctx).Where("url = ?", url).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 按创建时间倒序获取条目，id 作为同刻的次序键
func (r *itemRepository) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	var ms []*model.Item
	err := r.dao.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.Item, 0, len(ms))
	for _, m := range ms {
		items = append(items, r.toDomain(m))
	}
	return items, nil
}

// Count 条目总数
func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	return count, err
}

// UpdateNote 仅更新 note 字段
func (r *itemRepository) UpdateNote(ctx context.Context, id int64, note string) error {
	result := r.dao.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"note":       note,
			"updated_at": timex.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除条目
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result := r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
