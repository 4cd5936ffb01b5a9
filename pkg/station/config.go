package station

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/kaansat/groundstation/pkg/csvlog"
)

// Config provides the options to run a station.
type Config struct {
	// StationID names the station on relays.
	StationID string `yaml:"station_id"`

	// Device is the serial device of the radio, e.g. /dev/ttyUSB0.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// Capture replays a file of received lines instead of a device.
	Capture string `yaml:"capture"`
	Follow  bool   `yaml:"follow"`

	// MQTTBrokerURL specifies the MQTT broker to relay events to.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt_url"`

	// FeedAddr is the listen address of the websocket feed.
	FeedAddr string `yaml:"feed_addr"`

	CSV   csvlog.Options `yaml:"csv"`
	Track string         `yaml:"track"`

	// Archive appends every event in relay encoding to a file.
	Archive string `yaml:"archive"`
}

// Errors of an invalid Config.
var (
	ErrNoSource       = errors.New("either device or capture must be specified")
	ErrTooManySources = errors.New("device and capture are exclusive")
	ErrNoStationID    = errors.New("station id must be specified")
)

var configFile string

var defaultConfig = Config{
	Baud:  19200,
	Track: "flight",
	CSV: csvlog.Options{
		MaxSize:    100,
		MaxBackups: 10,
	},
}

func init() {
	defaultConfig.StationID = MachineID()
	if val := os.Getenv("GS_STATION_ID"); val != "" {
		defaultConfig.StationID = val
	}
	if val := os.Getenv("GS_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
	if val := os.Getenv("GS_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// MachineID derives a short station ID from the machine.
func MachineID() string {
	id, err := machineid.ProtectedID("groundstation")
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "gs"
	}
	return "gs-" + id[:8]
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.StationID, "id", defaultConfig.StationID, "Station ID")
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the radio")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of the serial device")
	flag.StringVar(&defaultConfig.Capture, "capture", defaultConfig.Capture, "Replay a capture file instead of a device")
	flag.BoolVar(&defaultConfig.Follow, "follow", defaultConfig.Follow, "Keep following the capture file")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.FeedAddr, "feed", defaultConfig.FeedAddr, "Listen address of the websocket feed")
	flag.StringVar(&defaultConfig.CSV.Filename, "csv", defaultConfig.CSV.Filename, "CSV file to log frames into")
	flag.StringVar(&defaultConfig.Archive, "archive", defaultConfig.Archive, "File to archive relayed events into")
	flag.StringVar(&defaultConfig.Track, "track", defaultConfig.Track, "Name of the GPS track")
	flag.StringVar(&configFile, "config", configFile, "YAML config file")
}

// ParseFlags parses the command line and loads the config file if given.
func ParseFlags() {
	flag.Parse()
	if configFile == "" {
		return
	}
	if err := LoadConfigFile(configFile); err != nil {
		log.Fatalf("load %s: %v", configFile, err)
	}
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Load overlays YAML from r onto the config.
func (c *Config) Load(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(c)
	if err == io.EOF {
		return nil
	}
	return err
}

// LoadConfigFile overlays a YAML file onto the default config.
// Flags given on the command line keep precedence over the file.
func LoadConfigFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	explicit := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	if err := defaultConfig.Load(f); err != nil {
		return err
	}
	for name, val := range explicit {
		if err := flag.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the config is runnable.
func (c *Config) Validate() error {
	switch {
	case c.StationID == "":
		return ErrNoStationID
	case c.Device == "" && c.Capture == "":
		return ErrNoSource
	case c.Device != "" && c.Capture != "":
		return ErrTooManySources
	}
	return nil
}
