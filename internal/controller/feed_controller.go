package controller

import (
	"errors"
	"socialhub_backend/internal/service"
	"socialhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	FeedService *service.FeedService
}

func NewFeedController(feedService *service.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

// CreatePost godoc
// @Summary 发布帖子
// @Description 发布文字帖子，可附带一个视频文件（mp4/mov/avi）
// @Tags 动态
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   content formData string true "帖子内容"
// @Param   video formData file false "视频文件"
// @Success 201 {object} util.Response "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/posts [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	content := ctx.PostForm("content")
	if content == "" {
		util.BadRequest(ctx, "content is required")
		return
	}

	// 视频是可选的
	video, err := ctx.FormFile("video")
	if err != nil {
		video = nil
	}

	post, err := c.FeedService.CreatePost(claims.UserID, content, video)
	if err != nil {
		if errors.Is(err, util.ErrInvalidVideoType) {
			util.BadRequest(ctx, "仅支持 mp4/mov/avi 视频")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, post)
}

// GetFeed godoc
// @Summary 动态列表
// @Description 全站帖子按时间倒序分页，scope=friends 时只看好友
// @Tags 动态
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Param   scope query string false "all 或 friends"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/posts [get]
func (c *FeedController) GetFeed(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var posts []service.PostResponse
	var total int64
	var err error

	if ctx.Query("scope") == "friends" {
		claims := util.GetUserFromContext(ctx)
		if claims == nil {
			util.Unauthorized(ctx)
			return
		}
		posts, total, err = c.FeedService.GetFriendFeed(claims.UserID, page, limit)
	} else {
		posts, total, err = c.FeedService.GetFeed(page, limit)
	}
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

// LikePost godoc
// @Summary 点赞帖子
// @Tags 动态
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "帖子ID"
// @Success 200 {object} util.Response{data=object} "成功，返回最新点赞数"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id}/like [post]
func (c *FeedController) LikePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	likes, err := c.FeedService.LikePost(claims.UserID, uint(postID))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"likes": likes})
}

// swagger:model CommentRequest
type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// AddComment godoc
// @Summary 评论帖子
// @Tags 动态
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "帖子ID"
// @Param   body body CommentRequest true "评论内容"
// @Success 201 {object} util.Response "创建成功"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id}/comments [post]
func (c *FeedController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.FeedService.AddComment(claims.UserID, uint(postID), req.Content)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, comment)
}

// GetComments godoc
// @Summary 帖子评论列表
// @Tags 动态
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "帖子ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/posts/{id}/comments [get]
func (c *FeedController) GetComments(ctx *gin.Context) {
	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	comments, err := c.FeedService.GetComments(uint(postID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, comments)
}

// TrendingTopics godoc
// @Summary 热门话题
// @Description 全部帖子中的 # 话题按出现次数取前5
// @Tags 动态
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/trending [get]
func (c *FeedController) TrendingTopics(ctx *gin.Context) {
	topics, err := c.FeedService.TrendingTopics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, topics)
}
