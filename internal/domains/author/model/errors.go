package model

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
)
