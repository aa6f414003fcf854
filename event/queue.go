package event

import (
	"log"

	"github.com/lixenwraith/vi-snake/parameter"
)

// EventQueue is a fixed-capacity FIFO ring buffer for game events
// Single-writer-at-a-time: all producers and the consumer run on the game loop
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index

	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest unread event when full
func (eq *EventQueue) Push(event GameEvent) {
	if eq.tail-eq.head == parameter.EventQueueSize {
		dropped := eq.events[eq.head&parameter.EventBufferMask]
		eq.head++
		eq.dropped++
		log.Printf("event queue full: dropped %s from tick %d", dropped.Type, dropped.Tick)
	}

	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++
}

// Dropped returns how many events were overwritten before being read
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed while the caller processes the result are kept for the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{} // Release payload
	}
	eq.head = eq.tail
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
	}
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Clear discards all pending events
func (eq *EventQueue) Clear() {
	eq.events = [parameter.EventQueueSize]GameEvent{}
	eq.head, eq.tail = 0, 0
}
