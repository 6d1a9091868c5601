// Package endpoint picks the local port the shell's worker process listens
// on and, where local IPC uses named pipes, the matching peer identifier.
//
// The port is drawn once per process from [8080, 48080) so independent shell
// instances rarely collide. NewPortNumber discards it after a bind failure.
// On named-pipe platforms the peer identifier is derived from the port and
// exported as RS_LOCAL_PEER in the same step, so children spawned afterwards
// always see a peer that matches the current port.
package endpoint

import (
	"log/slog"
	"math/rand/v2"
	"strconv"

	"deskshell/internal/logging"
	"deskshell/internal/platform"
)

const (
	// LocalPeerEnv carries the local peer identifier to child processes.
	LocalPeerEnv = "RS_LOCAL_PEER"

	// PortBase is the lowest port handed out.
	PortBase = 8080
	// PortSpan is the number of distinct ports handed out.
	PortSpan = 40000

	pipePrefix = `\\.\pipe\`
	pipeSuffix = "-rsession"
)

// EnvSetter publishes variables to the process environment.
type EnvSetter interface {
	Setenv(key, value string) error
}

// Namer generates and memoizes the endpoint. It is not safe for concurrent use.
type Namer struct {
	platform platform.Platform
	env      EnvSetter
	draw     func() int
	logger   *slog.Logger

	assigned bool
	port     int
	peer     string
}

// Option customizes a Namer.
type Option func(*Namer)

// WithRandom replaces the random source. draw may return any int; negative
// draws are folded into range.
func WithRandom(draw func() int) Option {
	return func(n *Namer) {
		if draw != nil {
			n.draw = draw
		}
	}
}

// WithLogger sets the logger used for environment propagation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Namer) {
		n.logger = logging.NewComponentLogger(logger, "endpoint")
	}
}

// New returns a Namer for p that publishes peers through env.
func New(p platform.Platform, env EnvSetter, opts ...Option) *Namer {
	n := &Namer{
		platform: p,
		env:      env,
		draw:     rand.Int,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// PortNumber returns the memoized port, generating it on first use.
func (n *Namer) PortNumber() int {
	if !n.assigned {
		n.generate()
	}
	return n.port
}

// PortString returns PortNumber in decimal.
func (n *Namer) PortString() string {
	return strconv.Itoa(n.PortNumber())
}

// NewPortNumber discards the current endpoint and generates a fresh one.
func (n *Namer) NewPortNumber() int {
	n.assigned = false
	return n.PortNumber()
}

// LocalPeer returns the named-pipe peer for the current port, generating the
// endpoint if needed. It is empty on platforms that do not use named pipes.
func (n *Namer) LocalPeer() string {
	n.PortNumber()
	return n.peer
}

func (n *Namer) generate() {
	offset := n.draw() % PortSpan
	if offset < 0 {
		offset = -offset
	}
	port := PortBase + offset

	var peer string
	if n.platform.UsesNamedPipes() {
		peer = PeerForPort(port)
		if n.env != nil {
			if err := n.env.Setenv(LocalPeerEnv, peer); err != nil {
				n.logger.Error("publish local peer failed",
					slog.String(logging.FieldEventType, "local_peer_env"),
					slog.String("peer", peer),
					logging.Error(err))
			}
		}
	}

	n.port, n.peer, n.assigned = port, peer, true
	n.logger.Debug("endpoint assigned", slog.Int("port", port), slog.String("peer", peer))
}

// PeerForPort builds the named-pipe path for port.
func PeerForPort(port int) string {
	return pipePrefix + strconv.Itoa(port) + pipeSuffix
}
