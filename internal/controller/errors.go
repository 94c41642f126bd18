package controller

import (
	"errors"
	"net/http"

	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondDomainError 把业务错误翻译成统一信封；其余一律按 500 记日志返回
func respondDomainError(ctx *gin.Context, err error) {
	var attemptErr *util.AttemptLimitError

	switch {
	case errors.Is(err, util.ErrGroupNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrNoteNotFound),
		errors.Is(err, util.ErrResourceNotFound),
		errors.Is(err, util.ErrDeadlineNotFound),
		errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrNotGroupMember),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrTitleRequired),
		errors.Is(err, util.ErrAlreadyMember):
		util.BadRequest(ctx, err.Error())
	case errors.As(err, &attemptErr):
		// 附带上限和已用次数，便于前端提示
		ctx.JSON(http.StatusBadRequest, util.Response{
			Code:    http.StatusBadRequest,
			Message: attemptErr.Error(),
			Data: gin.H{
				"maxAttempts": attemptErr.Limit,
				"attempts":    attemptErr.Attempts,
			},
		})
	default:
		util.LogInternalError(ctx, err)
	}
}
