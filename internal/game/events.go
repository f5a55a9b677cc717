package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round lifecycle events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeAction       EventType = "action"
	EventTypeRoundEnd     EventType = "round_end"
	EventTypeTrainingDone EventType = "training_done"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once the opening four cards are dealt
type RoundStartEvent struct {
	State     GameState
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(state GameState) RoundStartEvent {
	return RoundStartEvent{State: state, timestamp: time.Now()}
}

// ActionEvent is published after an action has been applied
type ActionEvent struct {
	Side      Side
	Action    Action
	Reasoning string
	Hand      Hand // acting hand after the action
	timestamp time.Time
}

func (e ActionEvent) EventType() EventType { return EventTypeAction }
func (e ActionEvent) Timestamp() time.Time { return e.timestamp }

// NewActionEvent creates a new action event
func NewActionEvent(side Side, decision Decision, hand Hand) ActionEvent {
	return ActionEvent{
		Side:      side,
		Action:    decision.Action,
		Reasoning: decision.Reasoning,
		Hand:      hand.Clone(),
		timestamp: time.Now(),
	}
}

// RoundEndEvent is published by the session after a round is scored
type RoundEndEvent struct {
	Round        int
	Result       RoundResult
	State        GameState
	SessionScore float64
	timestamp    time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(round int, result RoundResult, state GameState, sessionScore float64) RoundEndEvent {
	return RoundEndEvent{
		Round:        round,
		Result:       result,
		State:        state,
		SessionScore: sessionScore,
		timestamp:    time.Now(),
	}
}

// TrainingDoneEvent is published when pre-play training rounds finish
type TrainingDoneEvent struct {
	Rounds    int
	timestamp time.Time
}

func (e TrainingDoneEvent) EventType() EventType { return EventTypeTrainingDone }
func (e TrainingDoneEvent) Timestamp() time.Time { return e.timestamp }

// NewTrainingDoneEvent creates a new training done event
func NewTrainingDoneEvent(rounds int) TrainingDoneEvent {
	return TrainingDoneEvent{Rounds: rounds, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(event GameEvent)

// OnEvent calls f.
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
