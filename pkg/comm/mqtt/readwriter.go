package mqtt

import (
	"context"
	"io"
	"sync"
)

// ReadWriter implements comm.PacketReadWriter over a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForStation subscribes to all events relayed by a station,
// or by every station if station is empty.
func (p *ReadWriter) ForStation(station string) *ReadWriter {
	if station == "" {
		station = "+"
	}
	return p.WithTopics(station+"/+", "")
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	defer sub.Close()
	defer p.closeOnce.Do(func() { close(p.done) })
	<-ctx.Done()
	return ctx.Err()
}

func (p *ReadWriter) handleMsg(topic string, payload []byte) {
	if MatchTopic(topic, "+/meta") {
		return
	}
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
