// Package telemetry decodes CanSat telemetry frames.
//
// A frame is a line of comma separated fields starting with HeaderMarker and
// ending with TrailerMarker. The last field is the base-10 CRC-32 of all other
// fields, each followed by the separator. Nothing from a frame is trusted
// before the checksum matches; a frame which fails any check is dropped as a
// whole and the previously accepted frame stays current.
package telemetry
