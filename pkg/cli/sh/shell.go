package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/kaansat/groundstation/pkg/station"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

// Shell provides ishell backed interactive shell over a running station.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Station *station.Station

	cancel func()
	done   chan struct{}
	err    error
}

const shellKey = "$shell"

var (
	// flags

	evalOnly   bool
	outputJSON bool
	evalWait   = 5 * time.Second

	// commands
	commands = []*ishell.Cmd{
		&StatusCmd,
		&FrameCmd,
		&CSVCmd,
		&TrackCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.DurationVar(&evalWait, "wait", evalWait, "How long commands wait for a first frame from a live link.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(s *station.Station) *Shell {
	sh := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:   ishell.New(),
		Station: s,
	}
	sh.Shell.Set(shellKey, sh)
	sh.Shell.SetPrompt(s.Config.StationID + " > ")
	for _, cmd := range commands {
		sh.Shell.AddCmd(cmd)
	}
	return sh
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Start runs the station in background.
func (s *Shell) Start() {
	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.done = make(chan struct{})
	go func() {
		s.err = s.Station.Run(ctx)
		close(s.done)
	}()
}

// Stop stops the station and waits for it.
func (s *Shell) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	<-s.done
	return s.err
}

// Settle waits until the station has something to show: a capture
// which isn't followed is replayed to its end, a live link is given
// up to timeout for its first accepted frame.
func (s *Shell) Settle(timeout time.Duration) {
	if s.done == nil {
		return
	}
	if conf := s.Station.Config; conf.Capture != "" && !conf.Follow {
		<-s.done
		return
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for s.Station.Stats.Snapshot().Accepted == 0 {
		select {
		case <-s.done:
			return
		case <-deadline.C:
			return
		case <-ticker.C:
		}
	}
}

// FormatStats prints counters with reject reasons sorted by name.
func FormatStats(snapshot station.StatsSnapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "accepted %d, rejected %d (%.1f%%), resets %d",
		snapshot.Accepted, snapshot.Rejected, snapshot.LossRate()*100, snapshot.Resets)
	reasons := make([]string, 0, len(snapshot.Reasons))
	for reason := range snapshot.Reasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&sb, "\n  %-20s %d", reason, snapshot.Reasons[reason])
	}
	return sb.String()
}

// Print prints v as JSON if requested, or formatted by text otherwise.
func Print(c *ishell.Context, v interface{}, text func() string) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text())
}

// FrameJSON maps a frame to schema names.
func FrameJSON(f *telemetry.Frame) map[string]interface{} {
	fields := f.Fields()
	out := make(map[string]interface{}, len(fields))
	for n, def := range telemetry.Schema() {
		val := fields[n]
		switch def.Type {
		case telemetry.TypeUint:
			out[def.Name] = val.Uint()
		case telemetry.TypeInt:
			out[def.Name] = val.Int()
		case telemetry.TypeFloat:
			out[def.Name] = val.Float()
		case telemetry.TypeTimestamp:
			out[def.Name] = val.Time()
		default:
			out[def.Name] = val.Text()
		}
	}
	return out
}

// FormatFrame prints a frame one field per line.
func FormatFrame(f *telemetry.Frame) string {
	var sb strings.Builder
	fields := f.Fields()
	for n, def := range telemetry.Schema() {
		fmt.Fprintf(&sb, "%-22s %s\n", def.Name, fields[n].String())
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	s.Start()
	defer func() {
		if err := s.Stop(); err != nil {
			log.Println(err)
		}
	}()

	if len(args) > 0 {
		s.Settle(evalWait)
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// StatusCmd prints decoder statistics.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "frame counters and reject reasons",
		Func: func(c *ishell.Context) {
			snapshot := ShellFrom(c).Station.Stats.Snapshot()
			Print(c, snapshot, func() string { return FormatStats(snapshot) })
		},
	}

	// FrameCmd prints the current frame.
	FrameCmd = ishell.Cmd{
		Name:    "frame",
		Aliases: []string{"f"},
		Help:    "[FIELD...]",
		Func: func(c *ishell.Context) {
			cur := ShellFrom(c).Station.Decoder.Current()
			if len(c.Args) == 0 {
				Print(c, FrameJSON(cur), func() string { return FormatFrame(cur) })
				return
			}
			all := FrameJSON(cur)
			picked := make(map[string]interface{}, len(c.Args))
			for _, name := range c.Args {
				val, ok := all[name]
				if !ok {
					c.Err(fmt.Errorf("unknown field %q", name))
					return
				}
				picked[name] = val
			}
			Print(c, picked, func() string {
				var sb strings.Builder
				for _, name := range c.Args {
					fmt.Fprintf(&sb, "%s=%v ", name, picked[name])
				}
				return strings.TrimSpace(sb.String())
			})
		},
	}

	// CSVCmd toggles CSV logging.
	CSVCmd = ishell.Cmd{
		Name: "csv",
		Help: "[on|off|rotate]",
		Func: func(c *ishell.Context) {
			logger := ShellFrom(c).Station.CSV
			if logger == nil {
				c.Err(fmt.Errorf("CSV logging not configured"))
				return
			}
			if len(c.Args) > 0 {
				switch c.Args[0] {
				case "on":
					logger.SetEnabled(true)
				case "off":
					logger.SetEnabled(false)
				case "rotate":
					if err := logger.Rotate(); err != nil {
						c.Err(err)
						return
					}
				default:
					c.Err(fmt.Errorf("on, off or rotate expected"))
					return
				}
			}
			state := "off"
			if logger.Enabled() {
				state = "on"
			}
			c.Printf("csv %s, %d rows\n", state, logger.Rows())
		},
	}

	// TrackCmd shows or saves the GPS track.
	TrackCmd = ishell.Cmd{
		Name:    "track",
		Aliases: []string{"t"},
		Help:    "[save FILE]",
		Func: func(c *ishell.Context) {
			rec := ShellFrom(c).Station.Track
			if len(c.Args) == 0 {
				last, ok := rec.Last()
				if !ok {
					c.Println("no fix")
					return
				}
				c.Printf("%d fixes, last %.6f,%.6f at %.1fm, %.0fm from launch\n",
					rec.Len(), last.Latitude, last.Longitude, last.Altitude, rec.DistanceFromLaunch())
				return
			}
			if c.Args[0] != "save" || len(c.Args) < 2 {
				c.Err(fmt.Errorf("save FILE expected"))
				return
			}
			f, err := os.Create(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			defer f.Close()
			if err := rec.WriteGPX(f); err != nil {
				c.Err(err)
				return
			}
			c.Printf("%d fixes saved to %s\n", rec.Len(), c.Args[1])
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	station.ParseFlags()
	New(station.NewConfig().MustNewStation()).Run(flag.Args()...)
}
