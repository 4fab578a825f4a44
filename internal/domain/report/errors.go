package report

import "errors"

var (
	ErrInvalidRange      = errors.New("invalid report range")
	ErrNoEmployees       = errors.New("no employees match the report scope")
	ErrSettingsNotFound  = errors.New("tenant settings not found")
	ErrUnsupportedFormat = errors.New("unsupported report format")
)
