package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI    *service.AIService
	Notes *service.NoteService
}

func NewAIController(ai *service.AIService, notes *service.NoteService) *AIController {
	return &AIController{AI: ai, Notes: notes}
}

type GenerateNoteRequest struct {
	Topic    string  `json:"topic" binding:"required"`
	Material string  `json:"material"`
	GroupID  *string `json:"groupId"`
	// Save 为 true 时直接落库为当前用户的笔记
	Save bool `json:"save"`
}

// GenerateNote godoc
// @Summary AI 生成学习笔记
// @Tags AI
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateNoteRequest true "主题与材料"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/ai/notes [post]
func (c *AIController) GenerateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	generated, err := c.AI.GenerateNote(req.Topic, req.Material)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if !req.Save {
		util.Success(ctx, generated)
		return
	}

	note, err := c.Notes.SaveGeneratedNote(user.UserID, req.GroupID, generated)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

type GenerateFlashcardsRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Material string `json:"material"`
	Count    int    `json:"count"`
	Save     bool   `json:"save"`
}

// GenerateFlashcards godoc
// @Summary AI 生成记忆卡片
// @Tags AI
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateFlashcardsRequest true "主题与材料"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/ai/flashcards [post]
func (c *AIController) GenerateFlashcards(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateFlashcardsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	generated, err := c.AI.GenerateFlashcards(req.Topic, req.Material, req.Count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if !req.Save {
		util.Success(ctx, generated)
		return
	}

	cards, err := c.Notes.SaveGeneratedFlashcards(user.UserID, generated)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, cards)
}
