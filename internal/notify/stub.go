//go:build !linux

package notify

type stubNotifier struct{}

// New returns a no-op notifier on non-Linux platforms.
func New() Notifier {
	return stubNotifier{}
}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }
