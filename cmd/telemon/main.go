package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/kaansat/groundstation/pkg/comm"
	"github.com/kaansat/groundstation/pkg/comm/mqtt"
	"github.com/kaansat/groundstation/pkg/comm/stream"
	"github.com/kaansat/groundstation/pkg/comm/websocket"
	"github.com/kaansat/groundstation/pkg/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/cansat/"
	feedURL string
	archive string
	station string

	colorlog = log.New(color.Output, "", log.Lmicroseconds)
)

func init() {
	if val := os.Getenv("GS_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&feedURL, "ws", feedURL, "Websocket feed URL, e.g. ws://host:8080/events, instead of MQTT.")
	flag.StringVar(&archive, "archive", archive, "Replay an event archive file instead of MQTT.")
	flag.StringVar(&station, "station", station, "Only events of this station.")
}

func reader() comm.PacketReader {
	if archive != "" {
		f, err := os.Open(archive)
		if err != nil {
			log.Fatalln(err)
		}
		return stream.New(struct {
			io.Reader
			io.Writer
		}{f, io.Discard})
	}
	if feedURL != "" {
		rw, err := websocket.Dial(feedURL)
		if err != nil {
			log.Fatalln(err)
		}
		return rw
	}
	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	rw := mqtt.NewPacketReadWriter(q).ForStation(station)
	go rw.Run(context.Background())
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	return rw
}

func printEvent(typed *msgs.Typed, msg msgs.Message) {
	switch m := msg.(type) {
	case *msgs.Frame:
		colorlog.Printf("%s %s", typed.Station, color.HiGreenString(
			"#%d alt=%.1fm batt=%.2fV sats=%d %.6f,%.6f",
			m.PacketCount, m.Altitude, m.BatteryVoltage, m.GpsSatelliteCount, m.GpsLatitude, m.GpsLongitude))
	case *msgs.FrameRejected:
		colorlog.Printf("%s %s", typed.Station, color.HiRedString(
			"rejected %s (%d bytes): %s", m.Reason, m.Size, m.Error))
	case *msgs.SequenceReset:
		colorlog.Printf("%s %s", typed.Station, color.HiYellowString(
			"sequence reset %d -> %d", m.Previous, m.Current))
	default:
		colorlog.Printf("%s [type_id=%x] %s", typed.Station, typed.TypeId,
			msg.(msgs.SerializableMessage).Serializable().String())
	}
}

func main() {
	flag.Parse()
	r := reader()
	for {
		pkt, err := r.ReadPacket()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalln(err)
		}
		typed, err := msgs.DecodeTyped(pkt)
		if err != nil {
			log.Printf("bad message: %v", err)
			continue
		}
		if station != "" && typed.Station != station {
			continue
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("decode error: (type_id=%x) %v", typed.TypeId, err)
			continue
		}
		printEvent(typed, msg)
	}
}
