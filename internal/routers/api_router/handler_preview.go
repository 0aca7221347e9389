package api_router

import (
	"github.com/gin-gonic/gin"
	"github.com/haierkeys/link-moodboard-service/internal/app"
	"github.com/haierkeys/link-moodboard-service/internal/dto"
	pkgapp "github.com/haierkeys/link-moodboard-service/pkg/app"
	"github.com/haierkeys/link-moodboard-service/pkg/code"
	apperrors "github.com/haierkeys/link-moodboard-service/pkg/errors"
	"go.uber.org/zap"
)

// PreviewHandler 元数据预览 API 路由处理器
type PreviewHandler struct {
	*Handler
}

// NewPreviewHandler 创建 PreviewHandler 实例
func NewPreviewHandler(a *app.App) *PreviewHandler {
	return &PreviewHandler{
		Handler: NewHandler(a),
	}
}

// Get 预览链接元数据
// @Summary 预览链接元数据
// @Description 抓取页面元数据但不落库，供手动添加表单预填
// @Tags 预览
// @Produce json
// @Param url query string true "目标 URL"
// @Success 200 {object} pkgapp.Res{data=dto.PreviewDTO} "成功"
// @Router /api/preview [get]
func (h *PreviewHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.PreviewRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("PreviewHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	preview, err := h.App.PreviewService.Fetch(ctx, params.URL)
	if err != nil {
		h.logError(ctx, "PreviewHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(preview))
}
