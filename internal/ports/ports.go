package ports

import (
    "context"
    "errors"
)

// ErrNotFound is returned by repositories on a lookup miss.
var ErrNotFound = errors.New("not found")

// Dispatcher performs one outbound automation call. Implementations are
// fire-and-forget from the engine's point of view: the engine owns the
// allow/deny decision, never the automation's execution or retry.
type Dispatcher interface {
    Dispatch(ctx context.Context, automationKey, leadID string) error
}

// Governance is the allow/deny surface every automated action must consult
// before executing.
type Governance interface {
    CanExecute(ctx context.Context, automationKey string) (Decision, error)
}

// Decision is the resolver outcome. DeniedBy names which layer denied
// (kill switch, category gate, workflow gate or autonomy level) so operators
// can see a control-plane block for what it is.
type Decision struct {
    Allowed  bool
    DeniedBy string
    Reason   string
}
