// Package propagate implements the mutating primitives that keep an
// option.Options board consistent as candidates are eliminated and cells
// are committed: option removal (with naked-single cascade), section-wide
// removal, and value commitment.
//
// Every primitive that would empty a cell's last candidate returns
// ErrInvalidBoard; callers further up the stack (search) treat that as a
// pruning signal, not a panic.
package propagate
