package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrPageNotFound    = errors.New("页面不存在")
	ErrSectionNotFound = errors.New("页面区块不存在")
	ErrProductNotFound = errors.New("商品不存在")
	ErrSettingNotFound = errors.New("设置项不存在")
	ErrSlugExist       = errors.New("slug 已被占用")
	ErrStatusInvalid   = errors.New("页面状态无效")
	UnauthorizedError  = errors.New("权限不足")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrPageNotFound:    NotFound,
	ErrSectionNotFound: NotFound,
	ErrProductNotFound: NotFound,
	ErrSettingNotFound: NotFound,
	ErrSlugExist:       BadRequest,
	ErrStatusInvalid:   BadRequest,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
