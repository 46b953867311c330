//go:build !noos

package hio

import (
	"sync"
)

func defaultLocker() sync.Locker {
	return new(mutex)
}
