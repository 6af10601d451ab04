package controller

import (
	"errors"
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"
	"socialhub_backend/pkg/logger"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MessageController struct {
	MessageService *service.MessageService
	Hub            *service.MessageHub
}

func NewMessageController(messageService *service.MessageService, hub *service.MessageHub) *MessageController {
	return &MessageController{
		MessageService: messageService,
		Hub:            hub,
	}
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Content string `json:"content" binding:"required,max=4000"`
}

// Send godoc
// @Summary 发送私信
// @Tags 私信
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SendMessageRequest true "消息"
// @Success 201 {object} util.Response "创建成功"
// @Failure 404 {object} util.Response "收件人不存在"
// @Router /api/messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.MessageService.Send(claims.Username, req.To, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Error(ctx, 404, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message": msg,
		// 收件人是否有活跃连接，离线时前端提示"对方不在线"
		"recipientOnline": c.Hub.IsConnected(req.To),
	})
}

// Conversation godoc
// @Summary 与某用户的私信记录
// @Tags 私信
// @Produce  json
// @Security ApiKeyAuth
// @Param   username path string true "对方用户名"
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/messages/{username} [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	messages, total, err := c.MessageService.Conversation(claims.Username, ctx.Param("username"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  messages,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ServeWS godoc
// @Summary WebSocket 连接
// @Description 建立 WebSocket 连接接收私信实时推送，token 通过 query 传递
// @Tags 私信
// @Security ApiKeyAuth
// @Success 101 {string} string "Switching Protocols"
// @Router /api/ws [get]
func (c *MessageController) ServeWS(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Hub.ServeWS(ctx.Writer, ctx.Request, claims.Username); err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.String("username", claims.Username))
	}
}
