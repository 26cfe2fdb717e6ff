// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current instant. It is injected so tests can fix time.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}
