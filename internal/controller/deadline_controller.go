package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DeadlineController struct {
	Service *service.DeadlineService
}

func NewDeadlineController(svc *service.DeadlineService) *DeadlineController {
	return &DeadlineController{Service: svc}
}

// CreateDeadline godoc
// @Summary 创建小组截止提醒
// @Tags 截止提醒
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param body body service.DeadlineReq true "提醒内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/groups/{groupId}/deadlines [post]
func (c *DeadlineController) CreateDeadline(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.DeadlineReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	deadline, err := c.Service.CreateDeadline(ctx.Param("groupId"), user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, deadline)
}

// ListDeadlines godoc
// @Summary 小组截止提醒列表（按截止时间升序）
// @Tags 截止提醒
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/deadlines [get]
func (c *DeadlineController) ListDeadlines(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	deadlines, err := c.Service.ListDeadlines(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, deadlines)
}

// UpdateDeadline godoc
// @Summary 更新截止提醒（组管理员或创建者）
// @Tags 截止提醒
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param deadlineId path string true "提醒ID"
// @Param body body service.DeadlineReq true "提醒内容"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/deadlines/{deadlineId} [put]
func (c *DeadlineController) UpdateDeadline(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.DeadlineReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	deadline, err := c.Service.UpdateDeadline(ctx.Param("groupId"), ctx.Param("deadlineId"), user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, deadline)
}

// DeleteDeadline godoc
// @Summary 删除截止提醒（组管理员或创建者）
// @Tags 截止提醒
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param deadlineId path string true "提醒ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/deadlines/{deadlineId} [delete]
func (c *DeadlineController) DeleteDeadline(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteDeadline(ctx.Param("groupId"), ctx.Param("deadlineId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("deadlineId")})
}
