//go:build tinygo || noos

package trace

import (
	"sync"
)

type mutex struct {
	sync.Mutex
}
