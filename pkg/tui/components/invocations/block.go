// Package invocations renders a list of tool invocations as blocks: a header
// with the tool's display name and status, its arguments, and the image it
// returned, if any.
package invocations

import (
	"slices"
	"strconv"

	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/tui/components/toolcommon"
)

// Indicator is the status mark shown next to a block's name.
type Indicator int

const (
	IndicatorNone Indicator = iota
	IndicatorSpinner
	IndicatorCheck
)

// Param is one formatted argument row.
type Param struct {
	Name  string
	Value string
}

// Block is the display model of one invocation.
type Block struct {
	Key         string
	DisplayName string
	Indicator   Indicator
	// Dimmed blocks are drawn with reduced emphasis while the call is in flight.
	Dimmed   bool
	Params   []Param
	ImageURI string
}

// Running reports whether the block shows a spinner.
func (b Block) Running() bool {
	return b.Indicator == IndicatorSpinner
}

// Build turns invocations into blocks, in order. pause_execution calls never
// produce a block; hidden names extra tools to leave out.
func Build(invocations []invocation.ToolInvocation, hidden ...string) []Block {
	blocks := make([]Block, 0, len(invocations))
	for i := range invocations {
		inv := &invocations[i]
		if inv.IsPause() || slices.Contains(hidden, inv.ToolName) {
			continue
		}
		blocks = append(blocks, buildBlock(i, inv))
	}
	return blocks
}

func buildBlock(index int, inv *invocation.ToolInvocation) Block {
	b := Block{
		Key:         inv.ToolCallID,
		DisplayName: toolcommon.DisplayName(inv.ToolName),
	}
	if b.Key == "" {
		b.Key = strconv.Itoa(index) + ":" + inv.ToolName
	}

	switch inv.State {
	case invocation.StateCall:
		b.Indicator = IndicatorSpinner
		b.Dimmed = true
	case invocation.StateResult:
		b.Indicator = IndicatorCheck
	}

	if inv.Args != nil {
		b.Params = make([]Param, 0, inv.Args.Len())
		for key, value := range inv.Args.FromOldest() {
			b.Params = append(b.Params, Param{
				Name:  toolcommon.DisplayName(key),
				Value: toolcommon.FormatValue(value),
			})
		}
	}

	if uri, ok := inv.ImageURI(); ok {
		b.ImageURI = uri
	}
	return b
}

// AnyRunning reports whether at least one block shows a spinner.
func AnyRunning(blocks []Block) bool {
	return slices.ContainsFunc(blocks, Block.Running)
}
