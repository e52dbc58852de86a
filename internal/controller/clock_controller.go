package controller

import (
	"fmt"
	"net/http"

	"progress_clock_backend/internal/model"
	"progress_clock_backend/internal/render"
	"progress_clock_backend/internal/service"
	"progress_clock_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClockController struct {
	ClockService  *service.ClockService
	ExportService *service.ExportService
}

func NewClockController(clockService *service.ClockService, exportService *service.ExportService) *ClockController {
	return &ClockController{ClockService: clockService, ExportService: exportService}
}

// progressQuery 读取 current / total，total 也接受旧页面的字段名 maximum
func progressQuery(ctx *gin.Context) (int, int, error) {
	current := 0
	if s, ok := ctx.GetQuery("current"); ok {
		v, err := util.ParseCount(s)
		if err != nil {
			return 0, 0, fmt.Errorf("current: %w", err)
		}
		current = v
	}

	s, ok := ctx.GetQuery("total")
	if !ok {
		s, ok = ctx.GetQuery("maximum")
	}
	if !ok {
		return 0, 0, fmt.Errorf("total: %w: missing", util.ErrInvalidArgument)
	}
	total, err := util.ParseCount(s)
	if err != nil {
		return 0, 0, fmt.Errorf("total: %w", err)
	}
	return current, total, nil
}

// @Summary 渲染表盘 SVG
// @Description 将圆等分为 total 个扇区，前 current 个填充
// @Tags 表盘
// @Produce image/svg+xml
// @Param current query number false "已完成数量"
// @Param total query number true "扇区总数"
// @Success 200 {string} string "SVG 文档"
// @Failure 400 {object} util.Response
// @Router /clock.svg [get]
func (c *ClockController) GetSVG(ctx *gin.Context) {
	current, total, err := progressQuery(ctx)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	data, err := c.ClockService.SVG(ctx.Request.Context(), current, total)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "public, max-age=60")
	ctx.Data(http.StatusOK, render.ContentType, data)
}

// @Summary 获取扇区列表
// @Description 以 JSON 返回每个扇区的路径和颜色
// @Tags 表盘
// @Produce json
// @Param current query number false "已完成数量"
// @Param total query number true "扇区总数"
// @Success 200 {object} util.Response{data=[]model.Shape}
// @Failure 400 {object} util.Response
// @Router /clock/wedges [get]
func (c *ClockController) GetWedges(ctx *gin.Context) {
	current, total, err := progressQuery(ctx)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	shapes, err := c.ClockService.Wedges(ctx.Request.Context(), current, total)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, shapes)
}

// @Summary 当前表盘样式
// @Tags 表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.ClockStyle}
// @Router /clock/style [get]
func (c *ClockController) GetStyle(ctx *gin.Context) {
	util.Success(ctx, c.ClockService.Style())
}

// @Summary 导出表盘
// @Description 渲染 SVG 并上传到配置的存储
// @Tags 表盘
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ExportRequest true "导出参数"
// @Success 201 {object} util.Response{data=model.ExportResult}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /clock/export [post]
func (c *ClockController) Export(ctx *gin.Context) {
	var req model.ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	current, err := util.CountFromFloat(req.Current)
	if err != nil {
		util.FromError(ctx, fmt.Errorf("current: %w", err))
		return
	}
	total, err := util.CountFromFloat(req.Total)
	if err != nil {
		util.FromError(ctx, fmt.Errorf("total: %w", err))
		return
	}

	subject := ""
	if claims := util.GetClaimsFromContext(ctx); claims != nil {
		subject = claims.Subject
	}

	res, err := c.ExportService.Export(ctx.Request.Context(), current, total, subject)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, res)
}
