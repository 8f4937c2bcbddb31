package dispatch

import (
	"context"
	"encoding/json"

	"github.com/koscakluka/voiceops-core/core/llms"
)

type openPageArgs struct {
	PageName string `json:"pageName"`
}

type automatedActionArgs struct {
	TaskDescription string `json:"taskDescription" jsonschema:"title=Task description,description=What the automated action should accomplish"`
	TargetRegion    string `json:"targetRegion,omitempty" jsonschema:"description=Cloud region the action targets"`
}

// Tools returns the dispatcher's operations as agent-callable tools. Each
// tool routes through Execute so the busy flag and dashboard state stay
// consistent no matter how the tool was invoked.
func (d *Dispatcher) Tools() []llms.Tool {
	viewNames := []string{}
	for _, view := range AvailableViews() {
		viewNames = append(viewNames, string(view))
	}

	return []llms.Tool{
		llms.NewTool("runHealthCheck",
			"Run a live health check against the monitored system and report the current status snapshot.",
			nil, nil,
			func(ctx context.Context, _ struct{}) (string, error) {
				return d.Execute(ctx, "runHealthCheck", "")
			},
		),
		llms.NewTool("checkSystemStatus",
			"Fetch the latest system status snapshot and show it on the metrics dashboard.",
			nil, nil,
			func(ctx context.Context, _ struct{}) (string, error) {
				return d.Execute(ctx, "checkSystemStatus", "")
			},
		),
		llms.NewTool("openPage",
			"Switch the dashboard to the named view.",
			map[string]llms.ParameterBase{
				"pageName": {
					Type:        "string",
					Description: "The dashboard view to open.",
					Enum:        viewNames,
				},
			},
			[]string{"pageName"},
			func(ctx context.Context, args openPageArgs) (string, error) {
				arguments, _ := json.Marshal(args)
				return d.Execute(ctx, "openPage", string(arguments))
			},
		),
		llms.NewReflectedTool("performAutomatedAction",
			"Perform a simulated automated remediation action and report its log.",
			func(ctx context.Context, args automatedActionArgs) (string, error) {
				arguments, _ := json.Marshal(args)
				return d.Execute(ctx, "performAutomatedAction", string(arguments))
			},
		),
	}
}
