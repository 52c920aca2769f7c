package search_rooms

import "errors"

var (
	// ErrDirectoryUnavailable возвращается, когда справочник комнат не ответил
	ErrDirectoryUnavailable = errors.New("search_rooms: room directory unavailable")
)
