package user

import "errors"

var ErrAdminPrivilegeRequired = errors.New("admin privilege required")
