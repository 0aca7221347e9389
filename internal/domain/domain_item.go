// Package domain 定义领域模型和接口
package domain

import "time"

// 条目类型
const (
	// ItemTypeLink 链接条目，摄取管线唯一写入的类型
	ItemTypeLink = "link"
)

// Item 链接条目领域模型
type Item struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	URL         string
	Type        string
	SourceURL   string
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLink 判断条目是否为链接类型
func (i *Item) IsLink() bool {
	return i.Type == ItemTypeLink
}
