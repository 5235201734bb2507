package adapter

import "time"

// Clock abstracts wall-clock time so generators and schedulers can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}
