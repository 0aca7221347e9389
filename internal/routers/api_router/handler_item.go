package api_router

import (
	"github.com/gin-gonic/gin"
	"github.com/haierkeys/link-moodboard-service/internal/app"
	"github.com/haierkeys/link-moodboard-service/internal/dto"
	pkgapp "github.com/haierkeys/link-moodboard-service/pkg/app"
	"github.com/haierkeys/link-moodboard-service/pkg/code"
	"github.com/haierkeys/link-moodboard-service/pkg/convert"
	apperrors "github.com/haierkeys/link-moodboard-service/pkg/errors"
	"go.uber.org/zap"
)

// ItemHandler 链接条目 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type ItemHandler struct {
	*Handler
}

// NewItemHandler 创建 ItemHandler 实例
func NewItemHandler(a *app.App) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(a),
	}
}

// Ingest 摄取 URL
// @Summary 摄取 URL
// @Description 抓取页面元数据并创建条目，重复 URL 返回冲突
// @Tags 条目
// @Accept json
// @Produce json
// @Param params body dto.ItemIngestRequest true "摄取参数"
// @Success 200 {object} pkgapp.Res{data=dto.ItemDTO} "成功"
// @Router /api/items/ingest [post]
func (h *ItemHandler) Ingest(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ItemIngestRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ItemHandler.Ingest.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取请求上下文
	ctx := c.Request.Context()

	item, err := h.App.ItemService.Ingest(ctx, params)
	if err != nil {
		h.logError(ctx, "ItemHandler.Ingest", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(item))
}

// Create 创建条目
// @Summary 创建条目
// @Description 使用抓取或手动提供的字段创建条目，跳过元数据抓取
// @Tags 条目
// @Accept json
// @Produce json
// @Param params body dto.ItemCreateRequest true "条目内容"
// @Success 200 {object} pkgapp.Res{data=dto.ItemDTO} "成功"
// @Router /api/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ItemCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ItemHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	item, err := h.App.ItemService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "ItemHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(item))
}

// List 获取条目列表
// @Summary 获取条目列表
// @Description 按创建时间倒序分页获取条目
// @Tags 条目
// @Produce json
// @Param page query int false "页码"
// @Param pageSize query int false "每页数量"
// @Success 200 {object} pkgapp.Res{data=[]dto.ItemDTO} "成功"
// @Router /api/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	ctx := c.Request.Context()

	pagerCfg := pkgapp.PaginationConfig{
		DefaultPageSize: h.App.Config().App.DefaultPageSize,
		MaxPageSize:     h.App.Config().App.MaxPageSize,
	}
	pager := &pkgapp.Pager{
		Page:     pkgapp.GetPage(c),
		PageSize: pkgapp.GetPageSizeWithConfig(c, pagerCfg),
	}

	items, count, err := h.App.ItemService.List(ctx, pager)
	if err != nil {
		h.logError(ctx, "ItemHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, items, count)
}

// UpdateNote 更新条目备注
// @Summary 更新条目备注
// @Description note 是创建之后唯一可变的字段
// @Tags 条目
// @Accept json
// @Produce json
// @Param id path int true "条目 ID"
// @Param params body dto.ItemUpdateNoteRequest true "备注内容"
// @Success 200 {object} pkgapp.Res{data=dto.ItemDTO} "成功"
// @Router /api/items/{id}/note [put]
func (h *ItemHandler) UpdateNote(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ItemUpdateNoteRequest{}

	id := convert.StrTo(c.Param("id")).MustInt64()
	if id <= 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid item id"))
		return
	}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ItemHandler.UpdateNote.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	item, err := h.App.ItemService.UpdateNote(ctx, id, params)
	if err != nil {
		h.logError(ctx, "ItemHandler.UpdateNote", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(item))
}

// Delete 删除条目
// @Summary 删除条目
// @Description 按 ID 删除条目
// @Tags 条目
// @Produce json
// @Param id path int true "条目 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id := convert.StrTo(c.Param("id")).MustInt64()
	if id <= 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid item id"))
		return
	}

	ctx := c.Request.Context()

	if err := h.App.ItemService.Delete(ctx, id); err != nil {
		h.logError(ctx, "ItemHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
