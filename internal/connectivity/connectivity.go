// Package connectivity answers one question: can we reach the network
// right now? Exam generation is gated on it so the learner gets a clear
// offline message instead of a provider timeout.
package connectivity

import (
	"context"
	"net"
	"time"
)

// Checker reports whether the network is reachable.
type Checker interface {
	Online(ctx context.Context) bool
}

// DialChecker probes well-known endpoints with short TCP dials. The
// first successful dial wins.
type DialChecker struct {
	// Hosts are host:port endpoints to probe, tried in order.
	Hosts []string

	// Timeout bounds each individual dial.
	Timeout time.Duration
}

// NewDialChecker returns a checker probing public DNS resolvers.
func NewDialChecker() *DialChecker {
	return &DialChecker{
		Hosts:   []string{"1.1.1.1:53", "8.8.8.8:53"},
		Timeout: 2 * time.Second,
	}
}

func (c *DialChecker) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: c.Timeout}
	for _, host := range c.Hosts {
		conn, err := d.DialContext(ctx, "tcp", host)
		if err == nil {
			conn.Close()
			return true
		}
		if ctx.Err() != nil {
			return false
		}
	}
	return false
}

// Static is a fixed-answer checker for tests and the mock provider.
type Static bool

func (s Static) Online(context.Context) bool { return bool(s) }
