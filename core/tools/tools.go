// Package tools declares tool groups locally so their registration payloads
// and listings can be built without hand-writing JSON schemas: parameter
// schemas are reflected from Go argument structs.
package tools

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/jinzhu/copier"
	"github.com/koscakluka/transcript-core/core/agents"
)

// Definition declares one tool of a group, with a Go struct standing in for
// its parameter schema.
type Definition struct {
	Name        string
	Description string
	// Arguments is a prototype value (struct or pointer to struct) whose
	// fields and jsonschema tags describe the tool's parameters. Nil means
	// the tool takes no arguments.
	Arguments any
}

// ParameterSchema reflects the arguments prototype into a JSON schema.
func (d Definition) ParameterSchema() (map[string]any, error) {
	if d.Arguments == nil {
		return nil, nil
	}

	reflector := jsonschema.Reflector{DoNotReference: true}
	var schema *jsonschema.Schema
	if reflect.TypeOf(d.Arguments).Kind() == reflect.Ptr {
		schema = reflector.ReflectFromType(reflect.TypeOf(d.Arguments).Elem())
	} else {
		schema = reflector.Reflect(d.Arguments)
	}

	encoded, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parameter schema: %w", err)
	}
	var parameters map[string]any
	if err := json.Unmarshal(encoded, &parameters); err != nil {
		return nil, fmt.Errorf("failed to decode parameter schema: %w", err)
	}
	return parameters, nil
}

// Group is one tool server's worth of declarations plus the transport
// configuration the backend needs to reach it.
type Group struct {
	Name        string
	Config      agents.ToolConfig
	Definitions []Definition
}

// ToolInfos renders the group as the backend's tool listing shape.
func (g Group) ToolInfos() ([]agents.ToolInfo, error) {
	var infos []agents.ToolInfo
	for _, definition := range g.Definitions {
		var info agents.ToolInfo
		if err := copier.Copy(&info, definition); err != nil {
			return nil, fmt.Errorf("failed to copy tool definition %q: %w", definition.Name, err)
		}

		parameters, err := definition.ParameterSchema()
		if err != nil {
			return nil, err
		}
		info.Parameters = parameters
		info.ServerName = g.Name
		infos = append(infos, info)
	}
	return infos, nil
}
