package adapter

import "time"

// Clock abstracts wall-clock time so use cases that depend on "today" stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}
