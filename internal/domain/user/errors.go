package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already taken")
	ErrEmployeeIDExists     = errors.New("employee id already registered")
	ErrLastManager          = errors.New("cannot delete the last manager user")
	ErrSelfDelete           = errors.New("cannot delete your own account")
	ErrReviewerRoleRequired = errors.New("hr or manager role required")
	ErrManagerRoleRequired  = errors.New("manager role required")
	ErrEmployeeRoleRequired = errors.New("employee role required")
)
