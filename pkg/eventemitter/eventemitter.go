package eventemitter

import "sync"

// EventEmitter delivers node lifecycle events to its subscribers. Each
// subscriber consumes events from its own queue on a dedicated goroutine,
// so a slow callback does not stall the emitting side beyond the queue size.
type EventEmitter struct {
	mutex       sync.Mutex
	subscribers []*Subscriber
}

func (eventEmitter *EventEmitter) Emit(message interface{}) {
	eventEmitter.mutex.Lock()
	subscribers := eventEmitter.subscribers
	eventEmitter.mutex.Unlock()
	for _, subscriber := range subscribers {
		subscriber.enqueue(message)
	}
}

func (eventEmitter *EventEmitter) Subscribe(callback func(interface{})) {
	subscriber := newSubscriber(callback)
	eventEmitter.mutex.Lock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, subscriber)
	eventEmitter.mutex.Unlock()
}

type Subscriber struct {
	inputQueue chan interface{}
	callback   func(interface{})
}

func newSubscriber(callback func(interface{})) *Subscriber {
	instance := &Subscriber{
		inputQueue: make(chan interface{}, 1),
		callback:   callback,
	}
	go func() {
		for message := range instance.inputQueue {
			instance.callback(message)
		}
	}()
	return instance
}

func (subscriber *Subscriber) enqueue(message interface{}) {
	subscriber.inputQueue <- message
}
