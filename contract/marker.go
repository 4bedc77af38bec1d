package contract

// Transferable is implemented by error values that, together with their whole
// cause chain, may be handed to another goroutine and used there.
//
// The interface is sealed: a type opts in only by embedding TransferSafe or ShareSafe.
type Transferable interface {
	Error
	transferSafe()
}

// Shareable is implemented by error values that may additionally be read
// concurrently from several goroutines. Any synchronisation the value needs
// for that is its own responsibility.
type Shareable interface {
	Transferable
	shareSafe()
}

// TransferSafe marks the embedding error type as Transferable.
type TransferSafe struct{}

func (TransferSafe) transferSafe() {}

// ShareSafe marks the embedding error type as Shareable (and Transferable).
type ShareSafe struct{ TransferSafe }

func (ShareSafe) shareSafe() {}
