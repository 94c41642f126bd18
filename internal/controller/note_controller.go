package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Service *service.NoteService
}

func NewNoteController(svc *service.NoteService) *NoteController {
	return &NoteController{Service: svc}
}

// CreateNote godoc
// @Summary 创建笔记（可挂到小组）
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.NoteReq true "笔记内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Service.CreateNote(user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

// ListMyNotes godoc
// @Summary 我的笔记
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/notes [get]
func (c *NoteController) ListMyNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	notes, err := c.Service.ListMyNotes(user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, notes)
}

// ListGroupNotes godoc
// @Summary 小组笔记列表
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/notes [get]
func (c *NoteController) ListGroupNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	notes, err := c.Service.ListGroupNotes(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, notes)
}

// GetNote godoc
// @Summary 笔记详情
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "笔记ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{noteId} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	note, err := c.Service.GetNote(ctx.Param("noteId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// UpdateNote godoc
// @Summary 更新笔记（仅作者）
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "笔记ID"
// @Param body body service.NoteReq true "笔记内容"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{noteId} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Service.UpdateNote(ctx.Param("noteId"), user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// DeleteNote godoc
// @Summary 删除笔记（仅作者）
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "笔记ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{noteId} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteNote(ctx.Param("noteId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("noteId")})
}

// CreateFlashcard godoc
// @Summary 创建记忆卡片
// @Tags 卡片
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FlashcardReq true "卡片内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/flashcards [post]
func (c *NoteController) CreateFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FlashcardReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	card, err := c.Service.CreateFlashcard(user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, card)
}

// ListMyFlashcards godoc
// @Summary 我的记忆卡片
// @Tags 卡片
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/flashcards [get]
func (c *NoteController) ListMyFlashcards(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cards, err := c.Service.ListMyFlashcards(user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, cards)
}

// DeleteFlashcard godoc
// @Summary 删除记忆卡片（仅作者）
// @Tags 卡片
// @Produce json
// @Security ApiKeyAuth
// @Param cardId path string true "卡片ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/flashcards/{cardId} [delete]
func (c *NoteController) DeleteFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteFlashcard(ctx.Param("cardId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("cardId")})
}
