package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyQuery = errors.New("search query is empty")
)
