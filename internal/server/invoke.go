package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frostlab/sensormcp/internal/errortypes"
	"github.com/frostlab/sensormcp/internal/tools"
)

// ErrUnknownTool is returned by Invoke for tool names that are not registered.
var ErrUnknownTool = errors.New("unknown tool")

// toolOrder is the canonical listing order for ToolNames and the OpenAPI
// document.
var toolOrder = []string{
	tools.ToolSearch,
	tools.ToolSearchSensors,
	tools.ToolFetch,
	tools.ToolGetSensorDetails,
	tools.ToolGetDatastreams,
	tools.ToolGetObservations,
	tools.ToolGetLocations,
	tools.ToolGetObservedProperties,
	tools.ToolGetSensorsHardware,
	tools.ToolGetFeaturesOfInterest,
	tools.ToolGetAPIInfo,
}

// ToolNames returns the registered tool names in a stable order.
func (s *MCPSensorToolServer) ToolNames() []string {
	names := make([]string, len(toolOrder))
	copy(names, toolOrder)
	return names
}

// Invoke dispatches a tool call by name with JSON-encoded arguments. It backs
// the HTTP gateway, which cannot reach the typed handlers directly. The
// caller's context flows through to the upstream fetch, so cancelling an HTTP
// request aborts its FROST calls. Empty or nil args mean "all defaults".
func (s *MCPSensorToolServer) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case tools.ToolSearch, tools.ToolSearchSensors:
		return invoke(ctx, args, s.handleSearch)
	case tools.ToolFetch, tools.ToolGetSensorDetails:
		return invoke(ctx, args, s.handleFetch)
	case tools.ToolGetDatastreams:
		return invoke(ctx, args, s.handleGetDatastreams)
	case tools.ToolGetObservations:
		return invoke(ctx, args, s.handleGetObservations)
	case tools.ToolGetLocations:
		return invoke(ctx, args, s.handleGetLocations)
	case tools.ToolGetObservedProperties:
		return invoke(ctx, args, s.handleGetObservedProperties)
	case tools.ToolGetSensorsHardware:
		return invoke(ctx, args, s.handleGetSensorsHardware)
	case tools.ToolGetFeaturesOfInterest:
		return invoke(ctx, args, s.handleGetFeaturesOfInterest)
	case tools.ToolGetAPIInfo:
		return invoke(ctx, args, s.handleGetAPIInfo)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// invoke decodes args into the handler's request type and runs it.
func invoke[Req any, Resp any](ctx context.Context, args json.RawMessage, handler func(context.Context, Req) (Resp, error)) (any, error) {
	var req Req
	if len(args) > 0 {
		if err := json.Unmarshal(args, &req); err != nil {
			return nil, errortypes.ValidationError(err, "invalid tool arguments")
		}
	}
	return handler(ctx, req)
}
