package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUsernameTaken      = errors.New("该用户名已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPostNotFound       = errors.New("post not found")
	ErrSelfFriendRequest  = errors.New("不能添加自己为好友")
	ErrAlreadyFriends     = errors.New("已经是好友了")
	ErrRequestNotFound    = errors.New("申请不存在")
	ErrRequestHandled     = errors.New("申请已处理")
	ErrInvalidVideoType   = errors.New("unsupported video type")
)
