package domain

import "context"

// ItemRepository 条目数据访问接口
type ItemRepository interface {
	// Create 创建条目，URL 冲突返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, item *Item) (*Item, error)
	// GetByID 按主键获取条目
	GetByID(ctx context.Context, id int64) (*Item, error)
	// GetByURL 按 URL 精确匹配获取条目（区分大小写）
	GetByURL(ctx context.Context, url string) (*Item, error)
	// List 按创建时间倒序分页获取条目
	List(ctx context.Context, limit, offset int) ([]*Item, error)
	// Count 条目总数
	Count(ctx context.Context) (int64, error)
	// UpdateNote 仅更新 note 字段
	UpdateNote(ctx context.Context, id int64, note string) error
	// Delete 删除条目
	Delete(ctx context.Context, id int64) error
}
