// Package invocation holds the tool invocation records produced by an agent
// run: which tool was called, with which arguments, where the call is in its
// lifecycle and, once completed, what it returned.
package invocation

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// State is the lifecycle tag of a tool invocation.
type State string

const (
	StateCall        State = "call"
	StateResult      State = "result"
	StatePartialCall State = "partial-call"
)

// PauseToolName is the tool an agent calls to wait for the user. Its records
// are surfaced by the pause banner, not by the invocation list.
const PauseToolName = "pause_execution"

// Args maps parameter names to values, in the order the agent sent them.
type Args = orderedmap.OrderedMap[string, any]

// ToolInvocation is one call to a tool and, eventually, its result.
type ToolInvocation struct {
	ToolCallID string
	ToolName   string
	Args       *Args
	State      State
	Result     *Result
}

type rawInvocation struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Args       json.RawMessage `json:"args"`
	State      State           `json:"state"`
	Result     json.RawMessage `json:"result"`
}

// UnmarshalJSON decodes an invocation without failing on odd args or result
// shapes: args that are not an object decode as empty, and results keep
// whatever shape they came in.
func (inv *ToolInvocation) UnmarshalJSON(data []byte) error {
	var raw rawInvocation
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*inv = ToolInvocation{
		ToolCallID: raw.ToolCallID,
		ToolName:   raw.ToolName,
		Args:       decodeArgs(raw.Args),
		State:      raw.State,
		Result:     decodeResult(raw.Result),
	}
	return nil
}

func decodeArgs(data json.RawMessage) *Args {
	args := orderedmap.New[string, any]()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return args
	}

	if err := json.Unmarshal(trimmed, args); err != nil {
		return orderedmap.New[string, any]()
	}
	return args
}

// ArgCount returns the number of arguments, zero when there are none.
func (inv *ToolInvocation) ArgCount() int {
	if inv.Args == nil {
		return 0
	}
	return inv.Args.Len()
}

// Arg returns the named argument.
func (inv *ToolInvocation) Arg(name string) (any, bool) {
	if inv.Args == nil {
		return nil, false
	}
	return inv.Args.Get(name)
}

// IsPause reports whether this is a pause_execution call.
func (inv *ToolInvocation) IsPause() bool {
	return inv.ToolName == PauseToolName
}
