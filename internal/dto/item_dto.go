// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/haierkeys/link-moodboard-service/pkg/timex"
)

// ItemDTO Item data transfer object
// ItemDTO 链接条目数据传输对象
type ItemDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	URL         string     `json:"url"`
	Type        string     `json:"type"`
	SourceURL   string     `json:"sourceUrl"`
	Note        string     `json:"note"`
	CreatedAt   timex.Time `json:"createdAt"`
}

// ItemIngestRequest Request parameters for URL ingestion
// 用于 URL 摄取的请求参数
type ItemIngestRequest struct {
	URL string `json:"url" form:"url" binding:"required"`
}

// ItemCreateRequest Request parameters for creating an item from scraped
// or manually supplied fields, metadata extraction is skipped
// 使用抓取或手动提供的字段创建条目的请求参数，跳过元数据抓取
type ItemCreateRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
	URL         string `json:"url" form:"url" binding:"required"`
	Type        string `json:"type" form:"type"`
	Note        string `json:"note" form:"note"`
}

// ItemUpdateNoteRequest Request parameters for updating the note
// note 是创建之后唯一可变的字段
type ItemUpdateNoteRequest struct {
	Note string `json:"note" form:"note"`
}

// PreviewRequest Request parameters for metadata preview
// 元数据预览请求参数
type PreviewRequest struct {
	URL string `json:"url" form:"url" binding:"required"`
}

// PreviewDTO Metadata preview response
// PreviewDTO 元数据预览响应
type PreviewDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	URL         string `json:"url"`
	SourceURL   string `json:"sourceUrl"`
}

// VersionDTO version info response
// VersionDTO 版本信息响应
type VersionDTO struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}
