package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/xeipuuv/gojsonschema"
)

// Tool is the immutable description of one remote tool: its name,
// human-readable description and JSON input schema. Instances are created by
// parsing a server's tool listing and discarded with the owning Connection's
// cache.
type Tool struct {
	Name        string
	Description string
	InputSchema InputSchema
}

// InputSchema is the JSON-schema-like calling contract of a tool.
type InputSchema struct {
	Type       string
	Required   []string
	Properties map[string]Property

	// raw keeps the schema document as received, for strict validation and
	// for handing tool definitions to the LLM unchanged.
	raw map[string]interface{}
}

// Property describes a single tool parameter.
type Property struct {
	Type        string
	Description string
}

// Raw returns the schema document as received from the server.
func (s InputSchema) Raw() map[string]interface{} {
	if s.raw != nil {
		return s.raw
	}
	props := map[string]interface{}{}
	for name, p := range s.Properties {
		props[name] = map[string]interface{}{"type": p.Type, "description": p.Description}
	}
	raw := map[string]interface{}{
		"type":       s.Type,
		"properties": props,
	}
	if len(s.Required) > 0 {
		required := make([]interface{}, 0, len(s.Required))
		for _, r := range s.Required {
			required = append(required, r)
		}
		raw["required"] = required
	}
	return raw
}

// toolFromListing converts one record of the server's tool listing response.
func toolFromListing(t mcpgolang.ToolRetType) Tool {
	tool := Tool{Name: t.Name}
	if t.Description != nil {
		tool.Description = *t.Description
	}
	tool.InputSchema = parseInputSchema(t.InputSchema)
	return tool
}

func parseInputSchema(v interface{}) InputSchema {
	schema := InputSchema{Type: "object", Properties: map[string]Property{}}
	if v == nil {
		return schema
	}

	raw, ok := v.(map[string]interface{})
	if !ok {
		// The transport may deliver the schema as an arbitrary structure;
		// round-trip through JSON to get a generic map.
		data, err := json.Marshal(v)
		if err != nil {
			return schema
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return schema
		}
	}
	schema.raw = raw

	if t, ok := raw["type"].(string); ok {
		schema.Type = t
	}
	if required, ok := raw["required"].([]interface{}); ok {
		for _, r := range required {
			if name, ok := r.(string); ok {
				schema.Required = append(schema.Required, name)
			}
		}
	}
	if props, ok := raw["properties"].(map[string]interface{}); ok {
		for name, def := range props {
			p := Property{}
			if defMap, ok := def.(map[string]interface{}); ok {
				if t, ok := defMap["type"].(string); ok {
					p.Type = t
				}
				if d, ok := defMap["description"].(string); ok {
					p.Description = d
				}
			}
			schema.Properties[name] = p
		}
	}
	return schema
}

// ValidateArguments is an advisory pre-flight check of candidate arguments
// against the tool's input schema. Dispatch does not require it.
func (t Tool) ValidateArguments(args map[string]interface{}) error {
	for _, param := range t.InputSchema.Required {
		if _, ok := args[param]; !ok {
			return &ValidationError{Tool: t.Name, Param: param, Reason: "is required but missing"}
		}
	}

	for name, value := range args {
		prop, ok := t.InputSchema.Properties[name]
		if !ok || prop.Type == "" {
			continue
		}
		if err := checkType(prop.Type, value); err != nil {
			return &ValidationError{Tool: t.Name, Param: name, Reason: err.Error()}
		}
	}
	return nil
}

func checkType(typeTag string, value interface{}) error {
	switch typeTag {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("should be a string")
		}
	case "number":
		if !isNumber(value) {
			return fmt.Errorf("should be a number")
		}
	case "integer":
		if !isInteger(value) {
			return fmt.Errorf("should be an integer")
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("should be a boolean")
		}
	case "array":
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("should be an array")
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("should be an object")
		}
	}
	return nil
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	}
	return false
}

func isInteger(value interface{}) bool {
	switch v := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		// JSON numbers decode to float64; accept integral values.
		return v == math.Trunc(v)
	case json.Number:
		_, err := v.Int64()
		return err == nil
	}
	return false
}

// ValidateStrict validates arguments against the full raw JSON schema rather
// than just the declared type tags.
func (t Tool) ValidateStrict(args map[string]interface{}) error {
	raw := t.InputSchema.Raw()
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(raw), gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("schema validation of tool %q: %w", t.Name, err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("invalid arguments for tool %q: %s", t.Name, strings.Join(errs, ", "))
}
