package connectivity

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	if !Static(true).Online(ctx) {
		t.Fatal("Static(true) must report online")
	}
	if Static(false).Online(ctx) {
		t.Fatal("Static(false) must report offline")
	}
}

func TestDialChecker_ReachableHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	c := &DialChecker{
		Hosts:   []string{ln.Addr().String()},
		Timeout: time.Second,
	}
	if !c.Online(context.Background()) {
		t.Fatal("expected online against a live listener")
	}
}

func TestDialChecker_UnreachableHost(t *testing.T) {
	// Grab a port and close it again so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	c := &DialChecker{
		Hosts:   []string{addr},
		Timeout: 200 * time.Millisecond,
	}
	if c.Online(context.Background()) {
		t.Fatal("expected offline against a closed port")
	}
}

func TestDialChecker_FallsThroughToSecondHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	dead, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	deadAddr := dead.Addr().String()
	dead.Close()

	c := &DialChecker{
		Hosts:   []string{deadAddr, ln.Addr().String()},
		Timeout: 200 * time.Millisecond,
	}
	if !c.Online(context.Background()) {
		t.Fatal("expected the second host to succeed")
	}
}

func TestDialChecker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewDialChecker()
	if c.Online(ctx) {
		t.Fatal("a cancelled context must report offline")
	}
}
