package state

import "errors"

var (
	// ErrReentrant is the panic value (wrapped) raised when a shared cell is
	// locked again while a conflicting guard is still alive.
	ErrReentrant = errors.New("state: re-entrant shared cell access")

	// ErrReceiverGone is returned by Sender.Send once the queue has been
	// closed by its receiver.
	ErrReceiverGone = errors.New("state: signal receiver is gone")
)
