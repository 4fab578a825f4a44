package tenant

import "errors"

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrSlugExists       = errors.New("tenant slug already taken")
	ErrSettingsNotFound = errors.New("tenant settings not found")
)
