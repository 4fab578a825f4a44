package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPINExists        = errors.New("pin already in use by another employee")
	ErrPINMismatch      = errors.New("no employee matches this pin")
	ErrEmployeeInactive = errors.New("employee is deactivated")
	ErrEmailExists      = errors.New("email already registered in this tenant")
)
