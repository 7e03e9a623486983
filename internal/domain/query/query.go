// Package query models the subset of the search-engine query DSL produced by
// the param sources. Every node marshals to the exact wire shape the engine
// expects; there is no generic map assembly.
package query

import (
	"encoding/json"
	"fmt"
)

// Query is a single node of the query DSL.
type Query interface {
	json.Marshaler
	queryNode()
}

// Match is a full-text match on a single field.
type Match struct {
	Field string
	Value string
}

func (Match) queryNode() {}

// MarshalJSON renders {"match":{"<field>":"<value>"}}.
func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]string{
		"match": {m.Field: m.Value},
	})
}

// Bool combines clauses that all must match.
type Bool struct {
	Must []Query
}

func (Bool) queryNode() {}

// MarshalJSON renders {"bool":{"must":[...]}}.
func (b Bool) MarshalJSON() ([]byte, error) {
	must := b.Must
	if must == nil {
		must = []Query{}
	}
	return json.Marshal(map[string]map[string][]Query{
		"bool": {"must": must},
	})
}

// InnerHits requests the matching nested sub-documents with each hit.
type InnerHits struct {
	Size int `json:"size"`
}

// Nested runs Query against the sub-documents under Path.
type Nested struct {
	Path      string
	Query     Query
	InnerHits *InnerHits
}

func (Nested) queryNode() {}

type nestedJSON struct {
	Path      string     `json:"path"`
	Query     Query      `json:"query"`
	InnerHits *InnerHits `json:"inner_hits,omitempty"`
}

// MarshalJSON renders {"nested":{"path":..,"query":..,"inner_hits":..}}.
func (n Nested) MarshalJSON() ([]byte, error) {
	if n.Query == nil {
		return nil, fmt.Errorf("nested query on %q has no inner query", n.Path)
	}
	return json.Marshal(map[string]nestedJSON{
		"nested": {Path: n.Path, Query: n.Query, InnerHits: n.InnerHits},
	})
}

// Range bounds a field from above (inclusive).
type Range struct {
	Field string
	LTE   string
}

func (Range) queryNode() {}

// MarshalJSON renders {"range":{"<field>":{"lte":"<value>"}}}.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]map[string]string{
		"range": {r.Field: {"lte": r.LTE}},
	})
}

// Sort modes and orders used by the sorted-term source.
const (
	SortModeMax   = "max"
	SortOrderDesc = "desc"
)

// SortField sorts hits by a (possibly nested) field.
type SortField struct {
	Field      string
	Mode       string
	Order      string
	NestedPath string
}

type sortOptions struct {
	Mode       string `json:"mode,omitempty"`
	Order      string `json:"order,omitempty"`
	NestedPath string `json:"nested_path,omitempty"`
}

// MarshalJSON renders {"<field>":{"mode":..,"order":..,"nested_path":..}}.
func (s SortField) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]sortOptions{
		s.Field: {Mode: s.Mode, Order: s.Order, NestedPath: s.NestedPath},
	})
}

// Body is the search request body.
type Body struct {
	Query Query       `json:"query"`
	Sort  []SortField `json:"sort,omitempty"`
	Size  *int        `json:"size,omitempty"`
}

// Request is one parameter set handed to the harness. Index and Type are left
// nil so they serialize as null; the harness fills them from its own config.
type Request struct {
	Body            Body    `json:"body"`
	Index           *string `json:"index"`
	Type            *string `json:"type"`
	UseRequestCache bool    `json:"use_request_cache"`
}

// Map returns the request in the generic dictionary form.
func (r Request) Map() (map[string]any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}
	return m, nil
}
