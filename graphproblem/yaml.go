package graphproblem

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML form of a Graph.
type document struct {
	Start      string             `yaml:"start"`
	Goals      []string           `yaml:"goals"`
	Undirected bool               `yaml:"undirected,omitempty"`
	Edges      []Edge             `yaml:"edges"`
	Heuristic  map[string]float64 `yaml:"heuristic,omitempty"`
}

// Parse decodes a YAML graph document. Unknown keys are rejected.
func Parse(data []byte) (*Graph, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphproblem: decode: %w", err)
	}

	var opts []Option
	if doc.Undirected {
		opts = append(opts, WithUndirected())
	}
	g, err := New(doc.Start, doc.Goals, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Action, e.Cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	for id, h := range doc.Heuristic {
		g.SetHeuristic(id, h)
	}

	return g, nil
}

// Load reads and parses the YAML graph at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphproblem: read %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes g as a YAML document that Parse reads back. Mirrored
// edges of an undirected graph are written once.
func (g *Graph) Marshal() ([]byte, error) {
	g.muEdge.RLock()
	doc := document{
		Start:      g.start,
		Goals:      g.Goals(),
		Undirected: g.undirected,
	}
	for _, e := range g.edges {
		if e.mirror {
			continue
		}
		out := *e
		if out.Action == out.From+"->"+out.To {
			out.Action = ""
		}
		doc.Edges = append(doc.Edges, out)
	}
	if len(g.heuristic) > 0 {
		doc.Heuristic = make(map[string]float64, len(g.heuristic))
		for id, h := range g.heuristic {
			doc.Heuristic[id] = h
		}
	}
	g.muEdge.RUnlock()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("graphproblem: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
