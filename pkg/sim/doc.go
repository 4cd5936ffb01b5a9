// Package sim generates telemetry of a simulated CanSat flight,
// for exercising a ground station without hardware.
package sim
