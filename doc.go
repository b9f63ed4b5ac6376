/*
Package fpgafsm provides a small register-transfer level simulator for
synchronous digital circuits, using Go as a hardware description language.

Circuits are composed from parts. A part declares its input and output pins
and a mount function returning update closures; Chip composes parts into
larger parts by wiring their pins together. A Circuit runs the composed
parts step by step: every update closure reads pin states from the previous
simulation step and writes new states for the next one, so a clock cycle is
a fixed number of steps during which combinational logic settles and
clocked parts latch exactly once.

The stepper subpackage builds a complete circuit with this API: a
debounced push-button driving a four-state indicator FSM.
*/
package fpgafsm
