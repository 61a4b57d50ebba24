// Package mqtt provides MQTT client connectivity for Domus Core.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// Domus publishes device state and lifecycle events over MQTT so panels
// and integrations can follow the registry without talking to the core
// directly. State topics are retained; event topics are transient.
//
//	Domus Core → MQTT Broker → Panels / Integrations
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.DeviceState(id)
//	client.PublishRetained(topic, payload)
package mqtt
