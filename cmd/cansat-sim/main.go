package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	fx "github.com/kaansat/groundstation/pkg/framework"
	"github.com/kaansat/groundstation/pkg/link"
	"github.com/kaansat/groundstation/pkg/sim"
)

var (
	device      string
	baud        = 19200
	seed        = time.Now().UnixNano()
	corruptRate float64
	restartAt   int
	fast        bool
	profile     = sim.DefaultProfile()
	windHeading = 60.0
	teamID      = uint(profile.TeamID)
)

func init() {
	flag.StringVar(&device, "device", device, "Serial device to transmit on, stdout if empty")
	flag.IntVar(&baud, "baud", baud, "Baud rate of the serial device")
	flag.Int64Var(&seed, "seed", seed, "Random seed")
	flag.Float64Var(&corruptRate, "corrupt", corruptRate, "Fraction of frames to corrupt")
	flag.IntVar(&restartAt, "restart-at", restartAt, "Power cycle the unit after N frames")
	flag.BoolVar(&fast, "fast", fast, "Don't pace frames in real time")
	flag.UintVar(&teamID, "team", teamID, "Team ID")
	flag.Float64Var(&profile.Apogee, "apogee", profile.Apogee, "Apogee above launch in meters")
	flag.Float64Var(&profile.WindSpeed, "wind", profile.WindSpeed, "Wind speed in m/s")
	flag.Float64Var(&windHeading, "wind-heading", windHeading, "Wind heading in degrees")
	flag.DurationVar(&profile.Interval, "interval", profile.Interval, "Interval between frames")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	profile.TeamID = uint32(teamID)
	profile.WindHeading = sim.AngleFromDegrees(windHeading)
	var out io.Writer = os.Stdout
	if device != "" {
		dev, err := link.OpenSerial(device, baud)
		if err != nil {
			glog.Exit(err)
		}
		defer dev.Close()
		out = dev
	}

	tx := sim.NewTransmitter(sim.NewFlight(profile, seed), out, seed)
	tx.CorruptRate = corruptRate
	tx.RestartAt = restartAt
	tx.Realtime = !fast

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("transmitter", tx))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
