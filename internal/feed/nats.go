package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is where session events are published.
const DefaultSubjectPrefix = "arcade.sessions"

// NatsBus runs an embedded NATS server and publishes events to it as JSON.
// External NATS clients can watch the same subjects.
type NatsBus struct {
	ns     *server.Server
	conn   *nats.Conn
	prefix string
	logger *log.Logger

	host           string
	port           int
	startupTimeout time.Duration
}

// NatsOpt configures a NatsBus.
type NatsOpt func(*NatsBus)

// WithHost sets the listen host (default 127.0.0.1).
func WithHost(host string) NatsOpt {
	return func(b *NatsBus) { b.host = host }
}

// WithPort sets the listen port. The default of -1 picks a free port.
func WithPort(port int) NatsOpt {
	return func(b *NatsBus) { b.port = port }
}

// WithStartTimeout bounds how long to wait for the server to accept clients.
func WithStartTimeout(d time.Duration) NatsOpt {
	return func(b *NatsBus) { b.startupTimeout = d }
}

// WithSubjectPrefix changes the subject prefix.
func WithSubjectPrefix(prefix string) NatsOpt {
	return func(b *NatsBus) { b.prefix = prefix }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) NatsOpt {
	return func(b *NatsBus) { b.logger = l }
}

// NewNatsBus starts the embedded server and connects a client to it.
func NewNatsBus(opts ...NatsOpt) (*NatsBus, error) {
	b := &NatsBus{
		prefix:         DefaultSubjectPrefix,
		host:           "127.0.0.1",
		port:           server.RANDOM_PORT,
		startupTimeout: 10 * time.Second,
		logger:         log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   b.host,
		Port:   b.port,
		NoSigs: true,
		NoLog:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("feed: create nats server: %w", err)
	}
	b.ns = ns

	ns.Start()
	if !ns.ReadyForConnections(b.startupTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("feed: nats server not ready after %s", b.startupTimeout)
	}

	conn, err := nats.Connect(ns.ClientURL())
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("feed: connect to nats: %w", err)
	}
	b.conn = conn

	b.logger.Info("feed listening", "url", ns.ClientURL(), "subjects", b.prefix+".>")
	return b, nil
}

// URL is the client URL of the embedded server.
func (b *NatsBus) URL() string {
	return b.ns.ClientURL()
}

// Publish sends evt on <prefix>.<game>.
func (b *NatsBus) Publish(evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("feed: encode event: %w", err)
	}
	if err := b.conn.Publish(evt.Subject(b.prefix), data); err != nil {
		return fmt.Errorf("feed: publish: %w", err)
	}
	return nil
}

// Subscribe receives every game's events. Malformed payloads are logged and skipped.
func (b *NatsBus) Subscribe(buffer int) (*Subscription, error) {
	s := newSubscription(buffer)
	sub, err := b.conn.Subscribe(b.prefix+".>", func(msg *nats.Msg) {
		var evt Event
		if err := json.Unmarshal(msg.Data, &evt); err != nil {
			b.logger.Warn("dropping malformed feed event", "subject", msg.Subject, "err", err)
			return
		}
		s.Send(evt)
	})
	if err != nil {
		return nil, fmt.Errorf("feed: subscribe: %w", err)
	}
	s.onClose = func() {
		if err := sub.Unsubscribe(); err != nil {
			b.logger.Debug("feed unsubscribe", "err", err)
		}
	}
	return s, nil
}

// Flush waits until the server has processed everything published so far.
func (b *NatsBus) Flush() error {
	return b.conn.Flush()
}

// Close drains the client and shuts the server down.
func (b *NatsBus) Close() error {
	if b.conn != nil {
		b.conn.Close()
	}
	b.ns.Shutdown()
	b.ns.WaitForShutdown()
	return nil
}
