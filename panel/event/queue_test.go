package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"msgpanel/panel/input"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	_, ok := q.Pop()
	require.False(t, ok)

	require.True(t, q.Push(ShortPress(ChannelNext)))
	require.True(t, q.Push(EncoderMove(input.DirUp)))
	require.True(t, q.Push(LongPress(ChannelPrev)))
	require.Equal(t, 3, q.Len())

	for _, want := range []Event{ShortPress(ChannelNext), EncoderMove(input.DirUp), LongPress(ChannelPrev)} {
		got, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, q.Len())
}

func TestQueueDropsWhenFull(t *testing.T) {
	var q Queue
	for i := 0; i < QueueSlots; i++ {
		require.True(t, q.Push(ShortPress(ChannelOK)))
	}
	require.False(t, q.Push(ShortPress(ChannelHalf)))
	require.Equal(t, uint32(1), q.Dropped())

	e, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, ShortPress(ChannelOK), e)
	require.True(t, q.Push(ShortPress(ChannelHalf)))
}

func TestQueueSingleProducerSingleConsumer(t *testing.T) {
	var q Queue
	const n = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; {
			if q.Push(Event{Kind: KindShortPress, Channel: Channel(i % ChannelCount)}) {
				i++
			}
		}
	}()

	for i := 0; i < n; {
		e, ok := q.Pop()
		if !ok {
			continue
		}
		require.Equal(t, Channel(i%ChannelCount), e.Channel)
		i++
	}
	wg.Wait()
	require.Equal(t, 0, q.Len())
}

func TestFromPress(t *testing.T) {
	_, ok := FromPress(ChannelOK, input.PressNone)
	require.False(t, ok)

	e, ok := FromPress(ChannelOK, input.PressLong)
	require.True(t, ok)
	require.Equal(t, "long_press(ok)", e.String())
}
