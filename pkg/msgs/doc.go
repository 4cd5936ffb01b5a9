// Package msgs provides the relay protocol of the ground station.
package msgs

// Relayed messages are protobuf encoded and wrapped in a Typed envelope
// carrying the type ID and the originating station, so the same payload can
// be published to MQTT or pushed to websocket clients.
//
// Producer: ground station
// Consumer: mission control dashboards, telemon
