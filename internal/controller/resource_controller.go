package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	Service *service.ResourceService
}

func NewResourceController(svc *service.ResourceService) *ResourceController {
	return &ResourceController{Service: svc}
}

// UploadResource godoc
// @Summary 上传小组学习资料
// @Tags 资料
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param file formData file true "文件"
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param type formData string false "资料类型"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/groups/{groupId}/resources [post]
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ResourceReq
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少文件")
		return
	}

	resource, err := c.Service.UploadResource(ctx.Request.Context(), ctx.Param("groupId"), user.UserID, file, req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, resource)
}

// ListResources godoc
// @Summary 小组资料列表
// @Tags 资料
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	resources, err := c.Service.ListResources(ctx.Param("groupId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, resources)
}

// DownloadResource godoc
// @Summary 获取资料下载地址并累计下载数
// @Tags 资料
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param resourceId path string true "资料ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/resources/{resourceId}/download [get]
func (c *ResourceController) DownloadResource(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	resource, err := c.Service.Download(ctx.Param("groupId"), ctx.Param("resourceId"), user.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":      resource.FileURL,
		"resource": resource,
	})
}

// DeleteResource godoc
// @Summary 删除资料（组管理员或上传者）
// @Tags 资料
// @Produce json
// @Security ApiKeyAuth
// @Param groupId path string true "小组ID"
// @Param resourceId path string true "资料ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{groupId}/resources/{resourceId} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteResource(ctx.Request.Context(), ctx.Param("groupId"), ctx.Param("resourceId"), user.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("resourceId")})
}
