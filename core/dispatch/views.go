package dispatch

// View identifies one of the dashboard panels the assistant can bring up.
type View string

const (
	ViewIncidentSummary   View = "INCIDENT_SUMMARY"
	ViewLogs              View = "LOGS_VIEW"
	ViewMetricsDashboard  View = "METRICS_DASHBOARD"
	ViewDeploymentHistory View = "DEPLOYMENT_HISTORY"
	ViewAutomatedAction   View = "AUTOMATED_ACTION"
	ViewIdle              View = "IDLE"
)

// AvailableViews lists the views openPage accepts, in presentation order.
func AvailableViews() []View {
	return []View{
		ViewIncidentSummary,
		ViewLogs,
		ViewMetricsDashboard,
		ViewDeploymentHistory,
		ViewAutomatedAction,
		ViewIdle,
	}
}

func isKnownView(name string) bool {
	for _, view := range AvailableViews() {
		if string(view) == name {
			return true
		}
	}
	return false
}
