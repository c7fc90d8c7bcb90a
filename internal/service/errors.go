package service

import (
	"errors"
	"net/http"
)

const (
	BadRequest          = http.StatusBadRequest
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

var (
	ErrParamInvalid          = errors.New("Invalid parameters")
	ErrUnauthenticated       = errors.New("Authentication credentials were not provided.")
	ErrUserNotFound          = errors.New("User not found")
	ErrUsernameExist         = errors.New("A user with that username already exists!")
	ErrPasswordMismatch      = errors.New("Confirm Password is not same!")
	ErrPasswordIncorrect     = errors.New("Username or password incorrect")
	ErrUserFollowSelf        = errors.New("You cannot follow yourself")
	ErrPostNotFound          = errors.New("Post not found")
	ErrContentInvalid        = errors.New("Content must be a non-empty block document")
	ErrCommentNotFound       = errors.New("Comment not found")
	ErrNoComments            = errors.New("No comments found")
	ErrCommentParentNotFound = errors.New("Parent comment not found")
	ErrCommentParentMismatch = errors.New("Parent comment belongs to another post")
	ErrFileNotSupported      = errors.New("Unsupported file type")
	ErrFileTooLarge          = errors.New("File is too large")
	ErrActionDuplicate       = errors.New("You have already reported this")
	ErrReportSelf            = errors.New("You cannot report yourself")
	ErrSysBoxNotFound        = errors.New("Notification not found")
	UnauthorizedError        = errors.New("You do not have permission to perform this action.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUnauthenticated:       Forbidden,
	ErrUserNotFound:          NotFound,
	ErrUsernameExist:         BadRequest,
	ErrPasswordMismatch:      BadRequest,
	ErrPasswordIncorrect:     NotFound,
	ErrUserFollowSelf:        BadRequest,
	ErrPostNotFound:          NotFound,
	ErrContentInvalid:        BadRequest,
	ErrCommentNotFound:       NotFound,
	ErrNoComments:            NotFound,
	ErrCommentParentNotFound: NotFound,
	ErrCommentParentMismatch: BadRequest,
	ErrFileNotSupported:      BadRequest,
	ErrFileTooLarge:          BadRequest,
	ErrActionDuplicate:       Conflict,
	ErrReportSelf:            BadRequest,
	ErrSysBoxNotFound:        NotFound,
	UnauthorizedError:        Forbidden,
}
