package controller

import (
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	AssistantService *service.AssistantService
}

func NewAssistantController(assistantService *service.AssistantService) *AssistantController {
	return &AssistantController{AssistantService: assistantService}
}

// swagger:model AskRequest
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required,max=4000"`
}

// Ask godoc
// @Summary 询问智能助手
// @Description 单轮问答，返回完整回答
// @Tags 助手
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AskRequest true "问题"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 502 {object} util.Response "上游服务错误"
// @Router /api/assistant/ask [post]
func (c *AssistantController) Ask(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AssistantService.Ask(req.Prompt)
	if err != nil {
		util.Error(ctx, 502, "助手服务暂时不可用")
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}

// AskStream godoc
// @Summary 流式询问智能助手
// @Description SSE 流式返回回答片段
// @Tags 助手
// @Accept  json
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Param   body body AskRequest true "问题"
// @Success 200 {string} string "SSE 流"
// @Router /api/assistant/ask/stream [post]
func (c *AssistantController) AskStream(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	stream, errChan := c.AssistantService.AskStream(req.Prompt)

	for {
		select {
		case chunk, ok := <-stream:
			if !ok {
				ctx.SSEvent("done", "")
				return
			}
			ctx.SSEvent("message", chunk)
			ctx.Writer.Flush()
		case err, ok := <-errChan:
			if ok && err != nil {
				ctx.SSEvent("error", err.Error())
			}
			return
		case <-ctx.Request.Context().Done():
			return
		}
	}
}
