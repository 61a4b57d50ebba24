package mqtt

import "fmt"

// Topic prefixes for the Domus MQTT hierarchy.
//
// Device state lives under domus/core/device/{id}/state and is retained
// so late subscribers immediately see the current state. Lifecycle
// events under domus/core/event/{type} are transient.
const (
	// TopicPrefixCore is the base for all core topics.
	TopicPrefixCore = "domus/core"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "domus/system"
)

// Topics provides builders for Domus MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
type Topics struct{}

// DeviceState returns the canonical device state topic.
//
// Example: domus/core/device/6f1c.../state
func (Topics) DeviceState(deviceID string) string {
	return fmt.Sprintf("%s/device/%s/state", TopicPrefixCore, deviceID)
}

// CoreEvent returns the topic for lifecycle events.
//
// Example: domus/core/event/device_registered
func (Topics) CoreEvent(eventType string) string {
	return fmt.Sprintf("%s/event/%s", TopicPrefixCore, eventType)
}

// SystemStatus returns the system status topic used for online/offline
// announcements and the Last Will message.
//
// Example: domus/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
