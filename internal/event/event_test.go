package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcher_DeliversOnlySubscribedTypes(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(BodySelected, r)

	d.Dispatch(Event{Type: BodyHovered, Data: 1})
	d.Dispatch(Event{Type: BodySelected, Data: "/president"})

	assert.Equal(t, []Event{{Type: BodySelected, Data: "/president"}}, r.got)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(BodyHovered, a)
	d.Subscribe(BodyHovered, b)

	d.Unsubscribe(BodyHovered, a)
	d.Dispatch(Event{Type: BodyHovered})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}
