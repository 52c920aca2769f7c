package roomcache

import "errors"

var (
	// ErrCacheMiss возвращается хранилищем, когда ключа нет
	ErrCacheMiss = errors.New("roomcache: cache miss")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("roomcache: store error")
)
