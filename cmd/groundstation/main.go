package main

//go-build: CGO_ENABLED=0

import (
	"github.com/golang/glog"

	"github.com/kaansat/groundstation/pkg/station"
)

func init() {
	station.SetupFlags()
}

func main() {
	station.ParseFlags()
	defer glog.Flush()

	s := station.NewConfig().MustNewStation()
	if err := s.RunWithSignals(); err != nil {
		glog.Exit(err)
	}
	snapshot := s.Stats.Snapshot()
	glog.Infof("accepted %d, rejected %d, resets %d", snapshot.Accepted, snapshot.Rejected, snapshot.Resets)
}
