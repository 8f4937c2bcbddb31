package events

const (
	// KindDashboardViewChanged identifies a dashboard view switch.
	KindDashboardViewChanged Kind = "dashboard.view_changed"
	// KindDispatchBusyChanged identifies tool execution starting or ending.
	KindDispatchBusyChanged Kind = "dashboard.dispatch_busy_changed"
)

// DashboardViewChanged marks a tool switching the active dashboard view.
type DashboardViewChanged struct {
	Base
	View string
}

// NewDashboardViewChanged creates a dashboard view changed event.
func NewDashboardViewChanged(view string) DashboardViewChanged {
	return DashboardViewChanged{Base: NewBase(KindDashboardViewChanged), View: view}
}

// DispatchBusyChanged marks the dispatch in-progress flag flipping.
type DispatchBusyChanged struct {
	Base
	Busy bool
}

// NewDispatchBusyChanged creates a dispatch busy changed event.
func NewDispatchBusyChanged(busy bool) DispatchBusyChanged {
	return DispatchBusyChanged{Base: NewBase(KindDispatchBusyChanged), Busy: busy}
}
