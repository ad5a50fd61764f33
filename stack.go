// Completion: 100% - Stack family complete
package uniasm

// Stack operations move through SPxx with a fixed slot layout, so a
// push on one target occupies the same logical slot as on any other.
// The bulk forms save and restore the fourteen allocatable registers
// plus the four expansion temps in a fixed order; restore runs the
// exact reverse.

// StackSt pushes r.
func (o *Out) StackSt(r Reg) { o.be.stackSt(r) }

// StackLd pops into r.
func (o *Out) StackLd(r Reg) { o.be.stackLd(r) }

// StackSa saves all allocatable registers and the expansion temps.
func (o *Out) StackSa() { o.be.stackSa() }

// StackLa restores what StackSa saved, in reverse order.
func (o *Out) StackLa() { o.be.stackLa() }
