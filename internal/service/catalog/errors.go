package catalog

import "errors"

var (
	// ErrSetNotFound возвращается, когда готовый набор не найден
	ErrSetNotFound = errors.New("catalog.service: set not found")
)
