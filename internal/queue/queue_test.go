package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	out, err := q.Consume(ctx)
	assert.NoError(t, err)

	assert.NoError(t, q.Publish(ctx, Message{Type: "checkin", Body: []byte(`{"id":1}`)}))

	select {
	case msg := <-out:
		assert.Equal(t, "checkin", msg.Type)
		assert.Equal(t, `{"id":1}`, string(msg.Body))
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestInMemoryPublishRespectsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewInMemory(0)
	err := q.Publish(ctx, Message{Type: "checkin"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{Type: "checkin", Body: []byte("a|b|c")}
	got, err := deserialize(serialize(msg))
	assert.NoError(t, err)
	assert.Equal(t, msg, got)
}
