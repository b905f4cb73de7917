package cart

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_AutoDismiss(t *testing.T) {
	var changes atomic.Int32
	f := NewFeedback(20*time.Millisecond, func() { changes.Add(1) })

	f.Set(MessageSuccess, "Order placed successfully!")
	msg := f.Message()
	require.NotNil(t, msg)
	assert.Equal(t, MessageSuccess, msg.Kind)
	assert.Equal(t, "Order placed successfully!", msg.Text)

	require.Eventually(t, func() bool { return f.Message() == nil },
		time.Second, 5*time.Millisecond, "message should auto-dismiss")
	assert.GreaterOrEqual(t, changes.Load(), int32(2), "set and dismiss both notify")
}

func TestFeedback_SetResetsTimer(t *testing.T) {
	f := NewFeedback(60*time.Millisecond, nil)

	f.Set(MessageInfo, "Placing your order...")
	time.Sleep(40 * time.Millisecond)
	f.Set(MessageError, "Could not place order. Please try again.")

	// The first timer was cancelled; the second message survives past the
	// first deadline.
	time.Sleep(40 * time.Millisecond)
	msg := f.Message()
	require.NotNil(t, msg)
	assert.Equal(t, MessageError, msg.Kind)

	require.Eventually(t, func() bool { return f.Message() == nil },
		time.Second, 5*time.Millisecond)
}

func TestFeedback_Clear(t *testing.T) {
	var changes atomic.Int32
	f := NewFeedback(time.Hour, func() { changes.Add(1) })

	f.Set(MessageInfo, "hello")
	f.Clear()
	assert.Nil(t, f.Message())
	assert.Equal(t, int32(2), changes.Load())

	// Clearing an empty slot is silent.
	f.Clear()
	assert.Equal(t, int32(2), changes.Load())
}
