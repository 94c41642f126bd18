package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// CreateQuiz godoc
// @Summary 创建小组测验
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param body body service.CreateQuizReq true "测验内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateQuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.CreateQuiz(ctx.Param("groupId"), user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// ListQuizzes godoc
// @Summary 小组测验列表
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Router /api/groups/{groupId}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.Service.ListQuizzes(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary 测验详情
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quiz, err := c.Service.GetQuiz(ctx.Param("quizId"), ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary 删除测验（组管理员或创建者）
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteQuiz(ctx.Param("quizId"), ctx.Param("groupId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("quizId")})
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	// 与题目顺序逐位对应的选项ID，未作答传空串
	Answers []string `json:"answers"`
}

// SubmitQuiz godoc
// @Summary 提交测验作答
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param quizId path string true "测验ID"
// @Param body body SubmitQuizRequest true "作答（按题目顺序）"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "超出作答次数"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes/{quizId}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, submission, err := c.Service.SubmitQuiz(ctx.Param("quizId"), ctx.Param("groupId"), user.UserID, req.Answers)
	if err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("rejected").Inc()
		respondDomainError(ctx, err)
		return
	}

	monitoring.QuizSubmissionCounter.WithLabelValues("scored").Inc()
	util.Success(ctx, gin.H{
		"score":      score,
		"submission": submission,
	})
}

// GetResults godoc
// @Summary 当前用户的作答记录（最新在前）
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes/{quizId}/results [get]
func (c *QuizController) GetResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.GetResults(ctx.Param("quizId"), ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// GetLatestResult godoc
// @Summary 最近一次作答；从未作答返回404
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/quizzes/{quizId}/results/latest [get]
func (c *QuizController) GetLatestResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.Service.GetLatestResult(ctx.Param("quizId"), ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, submission)
}
