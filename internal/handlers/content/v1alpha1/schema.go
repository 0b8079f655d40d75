package v1alpha1

import (
	"github.com/invopop/jsonschema"
)

type messageSchema struct {
	name        string
	value       any
	description string
}

var messages = []messageSchema{
	{name: "ResolveRequest", value: &ResolveRequest{}, description: "Request body of " + ServiceName + "/Resolve"},
	{name: "ResolveResponse", value: &ResolveResponse{}, description: "Response body of " + ServiceName + "/Resolve"},
	{name: "GenerateNameRequest", value: &GenerateNameRequest{}, description: "Request body of " + ServiceName + "/GenerateName"},
	{name: "GenerateNameResponse", value: &GenerateNameResponse{}, description: "Response body of " + ServiceName + "/GenerateName"},
	{name: "ExecuteRequest", value: &ExecuteRequest{}, description: "Request body of " + ServiceName + "/Execute"},
	{name: "ExecuteResponse", value: &ExecuteResponse{}, description: "Response body of " + ServiceName + "/Execute"},
	{name: "ProbabilitiesRequest", value: &ProbabilitiesRequest{}, description: "Request body of " + ServiceName + "/Probabilities"},
	{name: "ProbabilitiesResponse", value: &ProbabilitiesResponse{}, description: "Response body of " + ServiceName + "/Probabilities"},
}

// Schemas returns a JSON Schema for every message carried by the JSON codec,
// keyed by message name
func Schemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	out := make(map[string]*jsonschema.Schema, len(messages))
	for _, m := range messages {
		schema := reflector.Reflect(m.value)
		schema.Title = m.name
		schema.Description = m.description
		out[m.name] = schema
	}
	return out
}

// MessageNames lists the message names in service order
func MessageNames() []string {
	names := make([]string, 0, len(messages))
	for _, m := range messages {
		names = append(names, m.name)
	}
	return names
}
