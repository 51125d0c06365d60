package wxchart

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Feed is a subscription to observations published on an MQTT topic. Each
// message payload is one JSON encoded Observation.
type Feed struct {
	logger   *slog.Logger
	broker   string
	topic    string
	clientID string
	client   mqtt.Client

	mu      sync.Mutex
	updates chan<- FeedUpdate
}

// FeedUpdate is a received observation. If the message could not be decoded
// the Error field is set.
type FeedUpdate struct {
	Observation Observation
	Error       error
}

// WithFeedLogger is an option setting function for NewFeed. It sets the logger
// used for connection events.
func WithFeedLogger(logger *slog.Logger) func(*Feed) {
	return func(f *Feed) {
		f.logger = logger
	}
}

// ClientID is an option setting function for NewFeed. It sets the MQTT client
// identifier.
func ClientID(id string) func(*Feed) {
	return func(f *Feed) {
		f.clientID = id
	}
}

// NewFeed returns a Feed for topic on broker. The connection is not opened
// until Connect is called.
func NewFeed(broker, topic string, opts ...func(*Feed)) *Feed {
	f := Feed{
		logger:   slog.New(slog.DiscardHandler),
		broker:   broker,
		topic:    topic,
		clientID: "wxchart",
	}

	for _, o := range opts {
		o(&f)
	}

	options := mqtt.NewClientOptions()
	options.AddBroker(f.broker)
	options.SetClientID(f.clientID)
	options.OnConnect = f.connect
	options.OnConnectionLost = f.connectionLost
	options.OnReconnecting = f.reconnecting

	f.client = mqtt.NewClient(options)

	return &f
}

// Connect opens the broker connection.
func (f *Feed) Connect() error {
	if token := f.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("cannot connect to %s: %w", f.broker, token.Error())
	}

	return nil
}

// IsConnected reports whether the broker connection is up.
func (f *Feed) IsConnected() bool {
	return f.client.IsConnected()
}

// Disconnect closes the broker connection.
func (f *Feed) Disconnect() {
	f.client.Disconnect(250)
}

// Subscribe delivers every message on the topic to ch, connecting first if
// needed. The subscription is renewed on every reconnect, so callers only
// need Connect to recover a dropped connection. Messages are delivered from
// the MQTT client's goroutine, ch should be buffered.
func (f *Feed) Subscribe(ch chan<- FeedUpdate) error {
	f.mu.Lock()
	f.updates = ch
	f.mu.Unlock()

	if !f.client.IsConnected() {
		return f.Connect()
	}

	return f.subscribe(ch)
}

func (f *Feed) subscription() chan<- FeedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.updates
}

func (f *Feed) subscribe(ch chan<- FeedUpdate) error {
	token := f.client.Subscribe(f.topic, 1, func(_ mqtt.Client, m mqtt.Message) {
		ch <- decodeUpdate(m.Payload())
	})

	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("cannot subscribe to %s: %w", f.topic, token.Error())
	}

	return nil
}

// Publish sends o on the topic. It is used to feed observations from the
// fetch command to running watchers.
func (f *Feed) Publish(o Observation) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}

	if token := f.client.Publish(f.topic, 1, false, b); token.Wait() && token.Error() != nil {
		return fmt.Errorf("cannot publish to %s: %w", f.topic, token.Error())
	}

	return nil
}

var errEmptyPayload = errors.New("empty payload")

func decodeUpdate(payload []byte) FeedUpdate {
	if len(payload) == 0 {
		return FeedUpdate{Error: errEmptyPayload}
	}

	var o Observation

	if err := json.Unmarshal(payload, &o); err != nil {
		return FeedUpdate{Error: err}
	}

	if err := o.Validate(); err != nil {
		return FeedUpdate{Observation: o, Error: err}
	}

	return FeedUpdate{Observation: o}
}

func (f *Feed) connect(_ mqtt.Client) {
	f.logger.Info("connect", "broker", f.broker)

	ch := f.subscription()
	if ch == nil {
		return
	}

	if err := f.subscribe(ch); err != nil {
		f.logger.Error("cannot subscribe", "topic", f.topic, "error", err)
	}
}

func (f *Feed) connectionLost(_ mqtt.Client, err error) {
	f.logger.Warn("connection lost", "broker", f.broker, "error", err)
}

func (f *Feed) reconnecting(_ mqtt.Client, _ *mqtt.ClientOptions) {
	f.logger.Info("reconnecting", "broker", f.broker)
}
