package app

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/logger"
)

type releaser struct {
	name string
	fn   func() error
}

// releaseStack records acquired resources and frees them in reverse order.
type releaseStack struct {
	items []releaser
}

// push registers a release function that cannot fail.
func (s *releaseStack) push(name string, fn func()) {
	s.pushErr(name, func() error {
		fn()
		return nil
	})
}

// pushErr registers a release function that may fail.
func (s *releaseStack) pushErr(name string, fn func() error) {
	s.items = append(s.items, releaser{name: name, fn: fn})
}

func (s *releaseStack) len() int {
	return len(s.items)
}

// releaseAll runs every release function, newest first, and empties the
// stack. All failures are combined.
func (s *releaseStack) releaseAll() error {
	var err error
	for i := len(s.items) - 1; i >= 0; i-- {
		r := s.items[i]
		logger.Debug("releasing", zap.String("resource", r.name))
		if rerr := r.fn(); rerr != nil {
			multierr.AppendInto(&err, fmt.Errorf("release %s: %w", r.name, rerr))
		}
	}
	s.items = nil
	return err
}
