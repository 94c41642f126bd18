package controller

import (
	"strconv"

	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Service *service.GroupService
}

func NewGroupController(svc *service.GroupService) *GroupController {
	return &GroupController{Service: svc}
}

// CreateGroup godoc
// @Summary 创建学习小组
// @Tags 小组
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateGroupReq true "小组信息"
// @Success 201 {object} util.Response
// @Router /api/groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGroupReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.Service.CreateGroup(user.UserID, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, group)
}

// ListMyGroups godoc
// @Summary 当前用户加入的小组列表
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/groups [get]
func (c *GroupController) ListMyGroups(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groups, err := c.Service.ListMyGroups(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, groups)
}

// GetGroup godoc
// @Summary 小组详情（含成员）
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	group, err := c.Service.GetGroup(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, group)
}

// JoinGroup godoc
// @Summary 加入小组
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Router /api/groups/{groupId}/join [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	member, err := c.Service.JoinGroup(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, member)
}

// LeaveGroup godoc
// @Summary 退出小组
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Router /api/groups/{groupId}/leave [post]
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.LeaveGroup(ctx.Param("groupId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"left": ctx.Param("groupId")})
}

// RemoveMember godoc
// @Summary 移除小组成员（组管理员）
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param userId path int true "成员用户ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/groups/{groupId}/members/{userId} [delete]
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID, err := strconv.ParseUint(ctx.Param("userId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.Service.RemoveMember(ctx.Param("groupId"), user.UserID, uint(targetID)); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"removed": targetID})
}

// DeleteGroup godoc
// @Summary 解散小组（组管理员）
// @Tags 小组
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteGroup(ctx.Param("groupId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("groupId")})
}
