package lock

// Handle is a process-local view of the write lock on a single target file.
// A Handle is either locked or unlocked; Acquire is the only transition to
// locked and Release the only transition back. The target path is fixed at
// construction.
type Handle struct {
	path       string
	holderPath string
	state      lockState
}

// Option configures a Handle at construction time.
type Option func(*Handle)

// WithHolderExecutable overrides the executable spawned as the lock holder
// child. By default the current binary re-execs itself, which requires main
// to call MaybeRunHolder; embedders that cannot add that dispatch can point
// this at the standalone xapian-lockd helper instead. Ignored on platforms
// that do not use a holder process.
func WithHolderExecutable(path string) Option {
	return func(h *Handle) {
		h.holderPath = path
	}
}

// New returns an unlocked Handle for the given lock target file.
func New(path string, opts ...Option) *Handle {
	h := &Handle{path: path}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Path returns the lock target file path.
func (h *Handle) Path() string {
	return h.path
}
