package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"gateway configuration YAML/JSON path or URL"`

	ListTools *ListToolsCmd `command:"list-tools" description:"Connect to the configured servers and list the merged tool registry"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one registered tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Invoke a registered tool"`
	Check     *CheckCmd     `command:"check"      description:"Probe a single endpoint and list its tools"`
	Explain   *ExplainCmd   `command:"explain"    description:"Classify a raw error message into user-facing guidance"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "check":
		o.Check = &CheckCmd{}
	case "explain":
		o.Explain = &ExplainCmd{}
	}
}
