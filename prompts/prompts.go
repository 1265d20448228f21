package prompts

// Default stage templates. They are Go text/templates rendered with Data.
// Every value is interpolated verbatim; nothing is escaped or trimmed.
const (
	// SelectPrompt asks the model to pick the reasoning modules that matter for the task.
	SelectPrompt = `Select several reasoning modules that are crucial to utilize in order
to solve the given task:

All reasoning modules descriptions:
{{.Modules}}

Task examples w/o answers:
- Example 1: {{.Task}}

Select several modules that are crucial for solving the task above:
`

	// AdaptPrompt asks the model to rewrite the selected modules for the task.
	AdaptPrompt = `Rephrase and specify each reasoning module so that it better helps
solving the task:

SELECTED module descriptions:
{{.Input}}

Task examples w/o answers:
- Example 1: {{.Task}}

Adapt each reasoning module description to better solve the tasks:
`

	// ImplementPrompt asks the model to turn the adapted modules into a JSON-shaped plan.
	ImplementPrompt = `Operationalize the reasoning modules into a step-by-step reasoning plan
in JSON format:

Reasoning structure example: {{.Example}}

ADAPTED module descriptions:
{{.Input}}

Task examples w/o answers:
- Example 1: {{.Task}}

Implement a reasoning structure for solvers to follow step-by-step and arrive at
correct answers:
`

	// ExecutePrompt asks the model to solve the task by filling in the plan.
	ExecutePrompt = `Follow the step-by-step reasoning plan in JSON to correctly solve the
task. Fill in the values following the keys by reasoning specifically about the task
given. Do not simply rephrase the keys.

Reasoning plan: {{.Input}}

Task: {{.Task}}
`
)
