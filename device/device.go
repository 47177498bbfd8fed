// Package device holds the peripheral models the CPU can emit values to.
package device

// Sink receives the values emitted by the PRN instruction.
type Sink interface {
	Print(value uint8) error
}
