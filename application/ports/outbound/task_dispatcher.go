package outbound

// TaskDispatcher abstracts the worker pool used for background work such as
// cleanup of orphaned uploads. Satisfied by *ants.Pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
