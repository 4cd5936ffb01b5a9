package mqtt

import (
	"context"
	"encoding/json"

	"github.com/golang/glog"

	"github.com/kaansat/groundstation/pkg/msgs"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

// MetaTopic is the retained topic carrying station metadata.
const MetaTopic = "meta"

// Publisher relays decoder events to MQTT. Each event is published
// to <station>/<event name>; the last accepted frame is retained.
type Publisher struct {
	Queue   *Queue
	Station string

	metaJSON []byte
}

// NewPublisher creates a Publisher. meta is published retained to
// <station>/meta while connected and cleared by the broker on disconnect.
func NewPublisher(brokerURL, station string, meta interface{}) (*Publisher, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+station+"/"+MetaTopic, nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("gs:" + station)
	}
	p := &Publisher{
		Queue:    NewQueue(opts, topicPrefix),
		Station:  station,
		metaJSON: metaJSON,
	}
	p.Queue.OnConnect = func(*Queue) { p.onConnected() }
	return p, nil
}

// Topic returns the topic an event is published to.
func (p *Publisher) Topic(ev telemetry.Event) string {
	return p.Station + "/" + ev.EventName()
}

// HandleEvent implements telemetry.EventHandler.
func (p *Publisher) HandleEvent(_ context.Context, ev telemetry.Event) {
	if !p.Queue.Client.IsConnected() {
		return
	}
	data, err := msgs.EncodeEvent(ev, p.Station)
	if err != nil {
		glog.Errorf("mqtt: encode %s: %v", ev.EventName(), err)
		return
	}
	_, retain := ev.(*telemetry.FrameAccepted)
	p.Queue.PubWith(p.Topic(ev), data, 0, retain)
}

// Run implements Runnable.
func (p *Publisher) Run(ctx context.Context) error {
	token := p.Queue.Connect()
	go func() {
		if token.Wait(); token.Error() != nil {
			glog.Errorf("mqtt: connect failed: %v", token.Error())
		}
	}()
	<-ctx.Done()
	if p.Queue.Client.IsConnected() {
		p.Queue.PubWith(p.Station+"/"+MetaTopic, nil, 1, true).Wait()
	}
	p.Queue.Close()
	return nil
}

func (p *Publisher) onConnected() {
	p.Queue.PubWith(p.Station+"/"+MetaTopic, p.metaJSON, 1, true)
}
