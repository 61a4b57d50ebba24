// Package announce publishes device lifecycle events over MQTT.
//
// The Announcer implements the controller layer's notification hooks
// and translates them into retained state topics and event topics.
// Publishing is best effort: a broker outage is logged, never surfaced
// to the device operation that triggered it.
package announce

import (
	"encoding/json"
	"time"

	"github.com/domus-home/domus-core/internal/device"
	"github.com/domus-home/domus-core/internal/infrastructure/mqtt"
)

// Publisher is the MQTT surface the announcer needs; *mqtt.Client
// satisfies it. Retained state goes through PublishRetained so the
// client's configured QoS applies; transient events carry the QoS
// passed to New.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	PublishRetained(topic string, payload []byte) error
	IsConnected() bool
}

// Logger defines the logging interface used by the announcer.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// statePayload is the JSON body published on device state topics.
type statePayload struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      device.Kind  `json:"kind"`
	Location  string       `json:"location,omitempty"`
	Status    string       `json:"status"`
	State     device.State `json:"state"`
	Timestamp time.Time    `json:"timestamp"`
}

// eventPayload is the JSON body published on lifecycle event topics.
type eventPayload struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Announcer publishes device lifecycle events to the MQTT broker.
type Announcer struct {
	publisher Publisher
	topics    mqtt.Topics
	logger    Logger
	qos       byte
}

// New creates an announcer over the given publisher. Event publishes
// use the given QoS, normally the broker QoS from config.
func New(publisher Publisher, logger Logger, qos byte) *Announcer {
	return &Announcer{
		publisher: publisher,
		logger:    logger,
		qos:       qos,
	}
}

// DeviceRegistered publishes the initial retained state for a new
// device plus a registration event.
func (a *Announcer) DeviceRegistered(id string, dev device.Device) {
	a.publishState(id, dev)
	a.publishEvent("device_registered", id)
}

// DeviceUnregistered clears the retained state topic and publishes a
// removal event. An empty retained payload deletes the topic on the
// broker, so late subscribers stop seeing the dead device.
func (a *Announcer) DeviceUnregistered(id string) {
	if err := a.publisher.PublishRetained(a.topics.DeviceState(id), nil); err != nil {
		a.logger.Warn("failed to clear device state topic", "id", id, "error", err)
	}
	a.publishEvent("device_unregistered", id)
}

// DeviceStateChanged republishes the retained state for a device.
func (a *Announcer) DeviceStateChanged(id string, dev device.Device) {
	a.publishState(id, dev)
	a.publishEvent("device_state_changed", id)
}

func (a *Announcer) publishState(id string, dev device.Device) {
	payload, err := json.Marshal(statePayload{
		ID:        id,
		Name:      dev.Name(),
		Kind:      dev.Kind(),
		Location:  dev.Location(),
		Status:    dev.Status(),
		State:     dev.State(),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		a.logger.Warn("failed to marshal device state", "id", id, "error", err)
		return
	}

	topic := a.topics.DeviceState(id)
	if err := a.publisher.PublishRetained(topic, payload); err != nil {
		a.logger.Warn("failed to publish device state", "id", id, "error", err)
		return
	}
	a.logger.Debug("device state published", "id", id, "topic", topic)
}

func (a *Announcer) publishEvent(event, id string) {
	payload, err := json.Marshal(eventPayload{
		ID:        id,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		a.logger.Warn("failed to marshal event", "event", event, "error", err)
		return
	}

	if err := a.publisher.Publish(a.topics.CoreEvent(event), payload, a.qos, false); err != nil {
		a.logger.Warn("failed to publish event", "event", event, "id", id, "error", err)
	}
}
