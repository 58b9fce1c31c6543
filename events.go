package tontine

// Event is a notification of a ledger mutation. Events are delivered
// synchronously, after the mutation is applied, in the order the mutations
// happened.
type Event interface{ event() }

// PaymentRecorded is emitted for every new payment, whatever its kind.
type PaymentRecorded struct {
	Payment *Payment
}

// RoundFull is emitted when the last expected contribution of a round
// arrives, making the round eligible for payout.
type RoundFull struct {
	TontineID string
	Round     int
}

// RoundCompleted is emitted when a round's payout is processed.
type RoundCompleted struct {
	TontineID string
	Round     int
	Payout    *Payment
}

// TontineCompleted is emitted once the rotation is settled, every round paid
// out or fully contributed.
type TontineCompleted struct {
	TontineID string
	On        Date
}

// PaymentReclassified is emitted when a post-rotation contribution becomes a
// carryover earmarked for its wrap-around receiver.
type PaymentReclassified struct {
	Payment    *Payment
	ReceiverID string
}

func (PaymentRecorded) event()     {}
func (RoundFull) event()           {}
func (RoundCompleted) event()      {}
func (TontineCompleted) event()    {}
func (PaymentReclassified) event() {}

// Handler receives ledger events.
type Handler func(Event)

// Subscribe registers a handler for all future ledger events.
func (l *Ledger) Subscribe(h Handler) {
	l.handlers = append(l.handlers, h)
}

func (l *Ledger) publish(e Event) {
	for _, h := range l.handlers {
		h(e)
	}
}
