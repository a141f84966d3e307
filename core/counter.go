package core

import (
	"novalith.com/note_transfer/felt"
)

// CounterScriptRoot identifies the counter-increment note script.
var CounterScriptRoot = scriptRoot("counter")

// counterSlot is the storage slot holding the counter map.
const counterSlot = 0

// counterKey is the fixed map key the counter value lives under.
var counterKey = felt.WordFromUint64s(0, 0, 0, 1)

// CounterContract is the storage-map component: a single fixed slot
// holding a key-to-word map with one scalar under a fixed key.
type CounterContract struct{}

// GetCount reads the current counter value.
func (CounterContract) GetCount(tx *Transaction) felt.Element {
	value := tx.StorageGet(counterSlot, counterKey)
	return value[3]
}

// IncrementCount adds one to the counter, wrapping at the field
// modulus with no distinct overflow signal, writes it back, and
// returns the new value.
func (c CounterContract) IncrementCount(tx *Transaction) felt.Element {
	current := c.GetCount(tx)
	one := felt.One()

	var next felt.Element
	next.Add(&current, &one)

	tx.StorageSet(counterSlot, counterKey, felt.Word{felt.Zero(), felt.Zero(), felt.Zero(), next})
	return next
}

// CounterNoteScript is the note-script variant that increments the
// consuming account's counter instead of moving assets.
type CounterNoteScript struct {
	Counter CounterContract
}

// Root identifies the script for the consumption-time root check.
func (s CounterNoteScript) Root() felt.Word {
	return CounterScriptRoot
}

func (s CounterNoteScript) Run(tx *Transaction) error {
	s.Counter.IncrementCount(tx)
	return nil
}
