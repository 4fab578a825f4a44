package punch

import "errors"

var (
	ErrPunchNotFound     = errors.New("punch not found")
	ErrPunchVoided       = errors.New("punch has already been voided")
	ErrInvalidPunchType  = errors.New("invalid punch type")
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrInvalidKioskPIN   = errors.New("no active employee matches this pin")
	ErrDoublePunch       = errors.New("punch of same type recorded seconds ago")
	ErrUnauthorized      = errors.New("unauthorized to access this punch")
	ErrEmployeeNotActive = errors.New("employee is deactivated")
)
