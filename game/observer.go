package game

import (
	"log"
)

// Observer is notified of named game events as they happen.
// Notification is synchronous and best-effort: a misbehaving observer
// is logged and skipped, never allowed to stop the game.
type Observer interface {
	HandleEvent(event string, payload map[string]interface{})
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(event string, payload map[string]interface{})

func (f ObserverFunc) HandleEvent(event string, payload map[string]interface{}) {
	f(event, payload)
}

// Subscribe registers an observer. Observers are notified in the
// order they subscribed.
func (e *gameEngine) Subscribe(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

func (e *gameEngine) notify(event string, payload map[string]interface{}) {
	for _, o := range e.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("observer panicked on %s: %v", event, r)
				}
			}()
			o.HandleEvent(event, payload)
		}()
	}
}
