package util

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrEmailRegistered = errors.New("该邮箱已被注册")

	ErrGroupNotFound    = errors.New("group not found")
	ErrNotGroupMember   = errors.New("not a member of this group")
	ErrAlreadyMember    = errors.New("already a member of this group")
	ErrPermissionDenied = errors.New("permission denied")

	ErrQuizNotFound       = errors.New("quiz not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrSubmissionNotFound = errors.New("submission not found")

	ErrNoteNotFound     = errors.New("note not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrDeadlineNotFound = errors.New("deadline not found")
)

// AttemptLimitError 超出测验作答次数，携带上限与当前次数供前端展示
type AttemptLimitError struct {
	Limit    int
	Attempts int
}

func (e *AttemptLimitError) Error() string {
	return fmt.Sprintf("maximum attempts reached (%d/%d)", e.Attempts, e.Limit)
}
