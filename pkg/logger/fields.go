package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldItemID 条目 ID 字段
	FieldItemID = "itemId"

	// FieldURL 链接地址字段
	FieldURL = "url"

	// FieldSourceURL 来源站点字段
	FieldSourceURL = "sourceUrl"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"
)
