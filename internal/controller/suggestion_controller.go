package controller

import (
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// swagger:model SuggestionRequest
type SuggestionRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// Submit godoc
// @Summary 提交功能建议
// @Tags 建议
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SuggestionRequest true "建议内容"
// @Success 201 {object} util.Response "创建成功"
// @Router /api/suggestions [post]
func (c *SuggestionController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	suggestion, err := c.SuggestionService.Submit(claims.Username, req.Content)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, suggestion)
}
