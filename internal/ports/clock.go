package ports

import "time"

// Clock abstracts "now" so reference allocation and audit stamping are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() *SystemClock { return &SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
