// Package state provides shared cells and the signals that announce their
// mutation.
//
// A [Shared] cell has a stable [Address]. Releasing a write guard queues a
// [SignalSharedUpdated] carrying that address on the [Queue] the writer was
// handed through a [Sender]. The owner of the queue drains it, gathers the
// addresses into an [AddressSet] and asks the element tree to drop every
// cache that depends on them.
//
// Cells belong to the thread that drives the window event loop: every
// Read, Write, Load, Store and Update must happen there. Their locks only
// detect re-entrant access, which panics with [ErrReentrant]; a lock held
// by another goroutine is reported the same way. Other goroutines take part
// by sending signals through a [Sender], which is safe for concurrent use.
package state
