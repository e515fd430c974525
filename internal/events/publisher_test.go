package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func newTestPublisher(w messageWriter) *Publisher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	p := NewPublisher(nil, "drishti.events", logger)
	p.writer = w
	return p
}

func TestPublish_WritesEnvelope(t *testing.T) {
	w := &recordingWriter{}
	p := newTestPublisher(w)

	err := p.Publish(context.Background(), ResponderDispatched, "inc-1", map[string]string{"responder": "John Smith"})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "inc-1", string(msg.Key))
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, ResponderDispatched, string(msg.Headers[0].Value))

	var ev struct {
		ID      string            `json:"id"`
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, ResponderDispatched, ev.Type)
	assert.Equal(t, "John Smith", ev.Payload["responder"])
	assert.Equal(t, ev.ID, string(msg.Headers[1].Value))
}

func TestPublish_WriterError(t *testing.T) {
	p := newTestPublisher(&recordingWriter{err: errors.New("broker down")})

	err := p.Publish(context.Background(), AlertSent, "a1", nil)

	assert.ErrorContains(t, err, "broker down")
}

func TestPublish_DisabledWithoutBrokers(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	p := NewPublisher(nil, "drishti.events", logger)

	assert.NoError(t, p.Publish(context.Background(), IncidentReported, "inc-1", struct{}{}))
	assert.NoError(t, p.Close())
}

func TestNewMessage_UnencodablePayload(t *testing.T) {
	_, err := newMessage(MediaAnalyzed, "k", make(chan int), time.Now())
	assert.Error(t, err)
}
