// Package link delivers raw telemetry buffers from the ground station radio.
//
// The CanSat transmits one frame per line over a receive-only serial link.
// This package only splits the byte stream on the line delimiter; each
// buffer it hands out is decoded on its own and nothing is reassembled.
//
// Producer: CanSat firmware (through the radio modem)
// Consumer: telemetry.Decoder
package link
