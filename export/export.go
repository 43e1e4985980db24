// Package export renders a variation graph for humans and tools.
//
// Mermaid draws every point as a node and every edge as an arrow from
// variant to fallback, labelled with its normalized weight; primary
// generalization edges are drawn thick (==>). JSON emits the registry,
// points and edges with the same information.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/contentdim/dimspace"
	"github.com/katalvlaran/contentdim/variation"
)

// GraphExport is the top-level JSON export structure.
type GraphExport struct {
	Dimensions []DimensionExport `json:"dimensions"`
	Points     []PointExport     `json:"points"`
	Edges      []EdgeExport      `json:"edges"`
}

// DimensionExport describes one dimension in priority order.
type DimensionExport struct {
	Name     string        `json:"name"`
	MaxDepth int           `json:"maxDepth"`
	Values   []ValueExport `json:"values"`
}

// ValueExport describes one dimension value.
type ValueExport struct {
	Identifier     string `json:"identifier"`
	Generalization string `json:"generalization,omitempty"`
	Depth          int    `json:"depth"`
}

// PointExport describes one registered point.
type PointExport struct {
	Hash        string            `json:"hash"`
	Label       string            `json:"label"`
	Coordinates map[string]string `json:"coordinates"`
}

// EdgeExport describes one variant → fallback edge.
type EdgeExport struct {
	Variant    string         `json:"variant"`
	Fallback   string         `json:"fallback"`
	Weight     map[string]int `json:"weight"`
	Normalized int64          `json:"normalized"`
	Primary    bool           `json:"primary"`
}

// Export builds the JSON export structure of g.
// Points are listed most specific first, edges in connection order.
func Export(g *variation.Graph) (*GraphExport, error) {
	primary, err := primaryEdges(g)
	if err != nil {
		return nil, err
	}

	out := &GraphExport{
		Dimensions: make([]DimensionExport, 0, g.Registry().Len()),
		Points:     make([]PointExport, 0, g.PointCount()),
		Edges:      make([]EdgeExport, 0, g.EdgeCount()),
	}
	for _, d := range g.Registry().Dimensions() {
		de := DimensionExport{Name: d.Name(), MaxDepth: d.MaxDepth()}
		for _, v := range d.Values() {
			ve := ValueExport{Identifier: v.Identifier(), Depth: v.Depth()}
			if parent := d.Generalization(v); parent != nil {
				ve.Generalization = parent.Identifier()
			}
			de.Values = append(de.Values, ve)
		}
		out.Dimensions = append(out.Dimensions, de)
	}
	for _, p := range g.Points() {
		out.Points = append(out.Points, PointExport{
			Hash:        p.Hash(),
			Label:       p.String(),
			Coordinates: p.Identifiers(),
		})
	}
	for _, e := range g.Edges() {
		n, err := g.NormalizeWeight(e.Weight())
		if err != nil {
			return nil, fmt.Errorf("export: %s → %s: %w", e.Variant(), e.Fallback(), err)
		}
		out.Edges = append(out.Edges, EdgeExport{
			Variant:    e.Variant().Hash(),
			Fallback:   e.Fallback().Hash(),
			Weight:     e.Weight(),
			Normalized: n,
			Primary:    primary[e],
		})
	}

	return out, nil
}

// JSON returns the indented JSON export of g.
func JSON(g *variation.Graph) ([]byte, error) {
	ex, err := Export(g)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal: %w", err)
	}

	return data, nil
}

// Mermaid produces a Mermaid "graph TD" diagram of g.
func Mermaid(g *variation.Graph) (string, error) {
	primary, err := primaryEdges(g)
	if err != nil {
		return "", err
	}

	points := g.Points()
	nodeIDs := make(map[string]string, len(points))
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for i, p := range points {
		id := fmt.Sprintf("N%d", i)
		nodeIDs[p.Hash()] = id
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", id, label(p)))
	}

	for _, e := range g.Edges() {
		n, err := g.NormalizeWeight(e.Weight())
		if err != nil {
			return "", fmt.Errorf("export: %s → %s: %w", e.Variant(), e.Fallback(), err)
		}
		arrow := "-->"
		if primary[e] {
			arrow = "==>"
		}
		sb.WriteString(fmt.Sprintf("  %s %s|%d| %s\n",
			nodeIDs[e.Variant().Hash()], arrow, n, nodeIDs[e.Fallback().Hash()]))
	}

	return sb.String(), nil
}

// label lists identifiers in dimension-name order, e.g. "en_US / CH".
// Double quotes would end the Mermaid node text, so they become #quot;.
func label(p *dimspace.Point) string {
	parts := make([]string, 0, p.Len())
	for _, name := range p.Dimensions() {
		v, _ := p.Value(name)
		parts = append(parts, strings.ReplaceAll(v.Identifier(), `"`, "#quot;"))
	}

	return strings.Join(parts, " / ")
}

func primaryEdges(g *variation.Graph) (map[*variation.Edge]bool, error) {
	primary := make(map[*variation.Edge]bool)
	for _, p := range g.RegisteredPoints() {
		if len(g.GeneralizationEdges(p)) == 0 {
			continue
		}
		e, err := g.PrimaryGeneralizationEdge(p)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		primary[e] = true
	}

	return primary, nil
}
