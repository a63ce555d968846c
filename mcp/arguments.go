package mcp

import (
	"encoding/json"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// kwargsField is the conventional field name under which some LLM agent
// runtimes deliver a nested, JSON-encoded argument payload.
const kwargsField = "kwargs"

// argumentShape classifies the encoding of an incoming argument bundle.
type argumentShape int

const (
	// shapeFlat is a plain parameter-name to value mapping.
	shapeFlat argumentShape = iota
	// shapeEncoded carries the real arguments as a JSON string under "kwargs".
	shapeEncoded
	// shapeEmpty is the "kwargs" field holding an empty string, meaning no arguments.
	shapeEmpty
)

func classifyArguments(args map[string]interface{}) argumentShape {
	v, ok := args[kwargsField]
	if !ok {
		return shapeFlat
	}
	s, ok := v.(string)
	if !ok {
		return shapeFlat
	}
	if s == "" {
		return shapeEmpty
	}
	return shapeEncoded
}

// NormalizeArguments resolves the argument-bundle shapes produced by the
// upstream LLM agent into a flat mapping:
//
//	{"kwargs": ""}          -> {}
//	{"kwargs": "{...}"}     -> the decoded mapping
//	{"kwargs": "not-json"}  -> {"value": "not-json"}
//	anything else           -> unchanged
//
// Unwrapping repeats one level deep when the decoded result itself carries
// the nested pattern.
func NormalizeArguments(log logger.Logger, args map[string]interface{}) map[string]interface{} {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if args == nil {
		return map[string]interface{}{}
	}

	normalized := unwrapArguments(log, args)
	if classifyArguments(normalized) != shapeFlat {
		normalized = unwrapArguments(log, normalized)
	}
	return normalized
}

func unwrapArguments(log logger.Logger, args map[string]interface{}) map[string]interface{} {
	switch classifyArguments(args) {
	case shapeEmpty:
		return map[string]interface{}{}
	case shapeEncoded:
		raw := args[kwargsField].(string)
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			log.Warn("failed to parse nested kwargs as JSON", "kwargs", raw)
			return map[string]interface{}{"value": raw}
		}
		return decoded
	default:
		if nested, ok := args[kwargsField].(map[string]interface{}); ok {
			return nested
		}
		return args
	}
}
