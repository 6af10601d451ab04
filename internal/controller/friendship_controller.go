package controller

import (
	"errors"
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FriendshipController struct {
	FriendshipService *service.FriendshipService
}

func NewFriendshipController(friendshipService *service.FriendshipService) *FriendshipController {
	return &FriendshipController{FriendshipService: friendshipService}
}

// swagger:model FriendRequestBody
type FriendRequestBody struct {
	Username string `json:"username" binding:"required"`
	Message  string `json:"message" binding:"max=255"`
}

// SendRequest godoc
// @Summary 发起好友申请
// @Description 按用户名发起申请，目标不存在时返回错误提示
// @Tags 好友
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body FriendRequestBody true "好友申请"
// @Success 201 {object} util.Response "创建成功"
// @Failure 400 {object} util.Response "参数或状态错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/friends/requests [post]
func (c *FriendshipController) SendRequest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FriendRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request, err := c.FriendshipService.SendFriendRequest(claims.UserID, req.Username, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.Error(ctx, 404, "用户不存在")
		case errors.Is(err, util.ErrSelfFriendRequest), errors.Is(err, util.ErrAlreadyFriends):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, request)
}

// swagger:model HandleRequestBody
type HandleRequestBody struct {
	Accept bool `json:"accept"`
}

// HandleRequest godoc
// @Summary 处理好友申请
// @Tags 好友
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "申请ID"
// @Param   body body HandleRequestBody true "是否同意"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "申请已处理"
// @Failure 404 {object} util.Response "申请不存在"
// @Router /api/friends/requests/{id} [put]
func (c *FriendshipController) HandleRequest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req HandleRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.FriendshipService.HandleFriendRequest(ctx.Param("id"), claims.UserID, req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRequestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrRequestHandled):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ListFriends godoc
// @Summary 好友列表
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/friends [get]
func (c *FriendshipController) ListFriends(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	friends, err := c.FriendshipService.GetFriends(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, friends)
}

// ListPendingRequests godoc
// @Summary 待处理好友申请
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/friends/requests [get]
func (c *FriendshipController) ListPendingRequests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	requests, err := c.FriendshipService.GetPendingRequests(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, requests)
}

// RemoveFriend godoc
// @Summary 删除好友
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "好友用户 ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/friends/{id} [delete]
func (c *FriendshipController) RemoveFriend(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	friendID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的好友 ID")
		return
	}

	if err := c.FriendshipService.DeleteFriend(claims.UserID, uint(friendID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
