package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(LevelUp, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(LevelUp, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(BlockMined, ListenerFunc(func(e Event) { got = append(got, "other") }))

	d.Dispatch(Event{Type: LevelUp, Data: 2})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: BlockRemoved}) })
}
