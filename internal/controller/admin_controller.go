package controller

import (
	"errors"
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   search query string false "用户名模糊搜索"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.AdminService.ListUsers(page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// BanUser godoc
// @Summary 封禁用户
// @Description 物理删除用户行，帖子和评论保留为孤儿数据
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   username path string true "用户名"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "不能封禁管理员"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/admin/users/{username} [delete]
func (c *AdminController) BanUser(ctx *gin.Context) {
	err := c.AdminService.BanUser(ctx.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ListPosts godoc
// @Summary 帖子列表（预览）
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/admin/posts [get]
func (c *AdminController) ListPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	posts, total, err := c.AdminService.ListPosts(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// DeletePost godoc
// @Summary 删除帖子
// @Description 按数字 ID 删除。也接受旧版前端提交的 "12: 预览..." 标签格式
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "帖子ID或旧版标签"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "标签格式错误"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/admin/posts/{id} [delete]
func (c *AdminController) DeletePost(ctx *gin.Context) {
	raw := ctx.Param("id")

	postID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		// 兼容旧版标签格式
		id, perr := util.ParsePostIDLabel(raw)
		if perr != nil {
			util.BadRequest(ctx, perr.Error())
			return
		}
		postID = uint64(id)
	}

	if err := c.AdminService.DeletePost(uint(postID)); err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ListSuggestions godoc
// @Summary 社区建议列表
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/admin/suggestions [get]
func (c *AdminController) ListSuggestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	suggestions, total, err := c.AdminService.ListSuggestions(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  suggestions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
