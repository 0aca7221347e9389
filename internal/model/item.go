package model

import (
	"github.com/haierkeys/link-moodboard-service/pkg/timex"
)

// Item 链接条目持久化模型
// url 上的唯一索引是去重守卫之后的最终防线
type Item struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	ImageURL    string     `gorm:"column:image_url"`
	URL         string     `gorm:"column:url;size:512;uniqueIndex"`
	Type        string     `gorm:"column:type;size:32"`
	SourceURL   string     `gorm:"column:source_url"`
	Note        string     `gorm:"column:note"`
	CreatedAt   timex.Time `gorm:"column:created_at;index"`
	UpdatedAt   timex.Time `gorm:"column:updated_at"`
}
