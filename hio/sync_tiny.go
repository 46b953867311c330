//go:build tinygo || noos

package hio

import (
	"sync"
)

type mutex struct {
	sync.Mutex
}
