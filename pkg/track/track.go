// Package track follows the GPS position reported by accepted frames.
package track

import (
	"context"
	"io"
	"sync"
	"time"

	geo "github.com/paulmach/go.geo"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

// Fix is a single GPS position.
type Fix struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
	Altitude  float64
}

func (f Fix) point() *geo.Point {
	return geo.NewPoint(f.Longitude, f.Latitude)
}

// Recorder is a telemetry.EventHandler collecting GPS fixes.
// Frames without satellites carry no position and are skipped.
// Every sequence reset starts a new segment.
type Recorder struct {
	Name string

	lock     sync.RWMutex
	segments [][]Fix
	launch   *Fix
}

// NewRecorder creates a Recorder.
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

// HandleEvent implements telemetry.EventHandler.
func (r *Recorder) HandleEvent(_ context.Context, ev telemetry.Event) {
	switch e := ev.(type) {
	case *telemetry.SequenceReset:
		r.lock.Lock()
		if n := len(r.segments); n > 0 && len(r.segments[n-1]) > 0 {
			r.segments = append(r.segments, nil)
		}
		r.lock.Unlock()
	case *telemetry.FrameAccepted:
		f := e.Frame
		if f.GPSSatelliteCount() == 0 {
			return
		}
		r.Add(Fix{
			Time:      f.GPSTime(),
			Latitude:  f.GPSLatitude(),
			Longitude: f.GPSLongitude(),
			Altitude:  f.GPSAltitude(),
		})
	}
}

// Add appends a fix to the current segment.
func (r *Recorder) Add(fix Fix) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.segments) == 0 {
		r.segments = append(r.segments, nil)
	}
	n := len(r.segments) - 1
	r.segments[n] = append(r.segments[n], fix)
	if r.launch == nil {
		launch := fix
		r.launch = &launch
	}
}

// Len returns the number of recorded fixes.
func (r *Recorder) Len() (count int) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, seg := range r.segments {
		count += len(seg)
	}
	return
}

// Segments returns the number of non-empty segments.
func (r *Recorder) Segments() (count int) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, seg := range r.segments {
		if len(seg) > 0 {
			count++
		}
	}
	return
}

// Last returns the latest fix.
func (r *Recorder) Last() (Fix, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for n := len(r.segments) - 1; n >= 0; n-- {
		if seg := r.segments[n]; len(seg) > 0 {
			return seg[len(seg)-1], true
		}
	}
	return Fix{}, false
}

// DistanceFromLaunch returns the ground distance in meters between
// the first and the latest fix.
func (r *Recorder) DistanceFromLaunch() float64 {
	last, ok := r.Last()
	if !ok {
		return 0
	}
	r.lock.RLock()
	launch := *r.launch
	r.lock.RUnlock()
	return launch.point().GeoDistanceFrom(last.point(), true)
}

// Length returns the ground distance in meters along all segments.
func (r *Recorder) Length() (meters float64) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, seg := range r.segments {
		if len(seg) < 2 {
			continue
		}
		path := geo.NewPath()
		for _, fix := range seg {
			path.Push(fix.point())
		}
		meters += path.GeoDistance(true)
	}
	return
}

// GPX builds a GPX document with one track, one segment per reset.
func (r *Recorder) GPX() *gpx.GPX {
	r.lock.RLock()
	defer r.lock.RUnlock()
	trk := gpx.GPXTrack{Name: r.Name}
	for _, seg := range r.segments {
		if len(seg) == 0 {
			continue
		}
		points := make([]gpx.GPXPoint, len(seg))
		for n, fix := range seg {
			points[n] = gpx.GPXPoint{
				Point: gpx.Point{
					Latitude:  fix.Latitude,
					Longitude: fix.Longitude,
					Elevation: *gpx.NewNullableFloat64(fix.Altitude),
				},
				Timestamp: fix.Time,
			}
		}
		trk.Segments = append(trk.Segments, gpx.GPXTrackSegment{Points: points})
	}
	return &gpx.GPX{
		Creator: "groundstation",
		Tracks:  []gpx.GPXTrack{trk},
	}
}

// WriteGPX writes the track as GPX 1.1.
func (r *Recorder) WriteGPX(w io.Writer) error {
	data, err := r.GPX().ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
