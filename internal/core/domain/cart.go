package domain

import "strconv"

// Cart maps a catalog slot index (decimal string, as stored in the document)
// to the quantity held. The mapping is sparse: slots outside the pre-allocated
// range may appear once a client references them, and a missing key reads as
// quantity zero. Quantities never go negative.
type Cart map[string]int

// NewCart returns a cart with size slots, all initialized to zero.
func NewCart(size int) Cart {
	c := make(Cart, size)
	for i := 0; i < size; i++ {
		c[strconv.Itoa(i)] = 0
	}
	return c
}

// SlotKey converts a slot index to its document key.
func SlotKey(slot int) string {
	return strconv.Itoa(slot)
}

// Quantity returns the quantity held at slot, zero when the slot is absent.
func (c Cart) Quantity(slot int) int {
	return c[SlotKey(slot)]
}

// Clear sets every existing slot back to zero.
func (c Cart) Clear() {
	for k := range c {
		c[k] = 0
	}
}
