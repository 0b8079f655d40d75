package v1alpha1

import "encoding/json"

// Option is one weighted value of a component slot
type Option struct {
	Value  string `json:"value"`
	Weight int    `json:"weight"`
}

// ResolveRequest asks for one reference
type ResolveRequest struct {
	Reference string `json:"reference"`
	// AsObject returns the referenced node as JSON instead of text
	AsObject bool `json:"as_object,omitempty"`
}

// ResolveResponse carries the resolved value
type ResolveResponse struct {
	Reference string          `json:"reference"`
	Value     string          `json:"value,omitempty"`
	Object    json.RawMessage `json:"object,omitempty"`
	Found     bool            `json:"found"`
}

// GenerateNameRequest names the names document to draw from
type GenerateNameRequest struct {
	NamesPath string `json:"names_path"`
	Context   string `json:"context,omitempty"`
}

// GenerateNameResponse carries a generated name
type GenerateNameResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// ExecuteRequest expands a caller supplied pattern
type ExecuteRequest struct {
	Pattern    string              `json:"pattern"`
	Context    string              `json:"context,omitempty"`
	Components map[string][]Option `json:"components,omitempty"`
}

// ExecuteResponse carries the expanded pattern
type ExecuteResponse struct {
	Result string `json:"result"`
}

// ProbabilitiesRequest lists the options to weigh
type ProbabilitiesRequest struct {
	Options []Option `json:"options"`
}

// ProbabilitiesResponse maps each option value to its chance in percent
type ProbabilitiesResponse struct {
	Probabilities map[string]float64 `json:"probabilities"`
}
