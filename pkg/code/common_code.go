package code

// 通用响应码
var (
	Success = NewSuss(0, lang{
		en:    "Success",
		zh_cn: "成功",
	})
	Failed = NewError(1, lang{
		en:    "Failed",
		zh_cn: "失败",
	})
	ErrorInvalidParams = NewError(10000001, lang{
		en:    "Invalid request parameters",
		zh_cn: "请求参数错误",
	})
	ErrorNotFoundAPI = NewError(10000002, lang{
		en:    "API not found",
		zh_cn: "接口不存在",
	})
	ErrorTooManyRequests = NewError(10000003, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	})
	ErrorServerInternal = NewError(10000004, lang{
		en:    "Internal server error",
		zh_cn: "服务内部错误",
	})
	ErrorRequestTimeout = NewError(10000005, lang{
		en:    "Request timed out",
		zh_cn: "请求超时",
	})
	ErrorDBQuery = NewError(10000006, lang{
		en:    "Database query error",
		zh_cn: "数据库查询错误",
	})
)

// 链接条目相关响应码
var (
	ErrorInvalidURL = NewError(20000001, lang{
		en:    "Invalid URL, only absolute http(s) URLs are accepted",
		zh_cn: "URL 无效，仅接受绝对 http(s) 地址",
	})
	ErrorPreviewFetchFailed = NewError(20000002, lang{
		en:    "Failed to fetch page metadata",
		zh_cn: "页面元数据抓取失败",
	})
	ErrorItemURLExists = NewError(20000003, lang{
		en:    "Item with this URL already exists",
		zh_cn: "该 URL 的条目已存在",
	})
	ErrorItemNotFound = NewError(20000004, lang{
		en:    "Item not found",
		zh_cn: "条目不存在",
	})
	ErrorCreateItemFail = NewError(20000005, lang{
		en:    "Failed to create item",
		zh_cn: "创建条目失败",
	})
	ErrorUpdateItemFail = NewError(20000006, lang{
		en:    "Failed to update item",
		zh_cn: "更新条目失败",
	})
	ErrorDeleteItemFail = NewError(20000007, lang{
		en:    "Failed to delete item",
		zh_cn: "删除条目失败",
	})
)
