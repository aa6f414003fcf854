package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored strings in bytes, enough for a full session UUID
const MaxStringLen = 36

// AtomicString is a string metric; the zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store keeps at most MaxStringLen bytes of val without splitting a rune
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
