package tool

import (
	"context"
	"fmt"
	"reflect"
)

// Invoker executes one tool call with already-parsed arguments.
type Invoker func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Descriptor is the raw tool definition as received from a server, prior to
// normalization.  Parameters holds the advertised schema verbatim; servers
// sometimes wrap it one level deeper under a "jsonSchema" key.
//
// Exactly one invocation entry point is guaranteed to be present but which
// one varies by server implementation, so adaptation probes all four in a
// fixed order.
type Descriptor struct {
	Name        string
	Description string
	Parameters  interface{}

	Call    Invoker
	Execute Invoker
	Run     Invoker
	Invoke  Invoker
}

// entryPoints lists the invocation candidates in probe order; the first
// non-nil entry wins.
func (d *Descriptor) entryPoints() []Invoker {
	return []Invoker{d.Call, d.Execute, d.Run, d.Invoke}
}

// wrap applies fn to every entry point present so that the eventual winner is
// wrapped regardless of which accessor the server populated.
func (d *Descriptor) wrap(fn func(Invoker) Invoker) *Descriptor {
	out := *d
	if out.Call != nil {
		out.Call = fn(out.Call)
	}
	if out.Execute != nil {
		out.Execute = fn(out.Execute)
	}
	if out.Run != nil {
		out.Run = fn(out.Run)
	}
	if out.Invoke != nil {
		out.Invoke = fn(out.Invoke)
	}
	return &out
}

// Tool is the normalized registry entry consumable by a tool-calling model
// runtime.  Schema always satisfies the sanitizer invariants; Params reflects
// the schema's shape for structural argument validation.  RawSchema is only
// set when validator construction fell back and retains the original schema
// for introspection.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]interface{}
	RawSchema   interface{}
	Params      reflect.Type

	invoke Invoker
}

// Invoke delegates to whichever entry point the descriptor carried, already
// wrapped where adaptation required it.
func (t *Tool) Invoke(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	if t.invoke == nil {
		return nil, fmt.Errorf("tool %q has no invocation entry point", t.Name)
	}
	return t.invoke(ctx, args)
}
