package observe

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// MachineDescription is a serialization-friendly snapshot of a machine
// table, decoupled from the pointer-linked info model.
type MachineDescription struct {
	Name        string                  `json:"name" yaml:"name"`
	Variables   []NameDescription       `json:"variables,omitempty" yaml:"variables,omitempty"`
	States      []StateDescription      `json:"states" yaml:"states"`
	Interface   []MethodDescription     `json:"interface,omitempty" yaml:"interface,omitempty"`
	Actions     []MethodDescription     `json:"actions,omitempty" yaml:"actions,omitempty"`
	Events      []MethodDescription     `json:"events,omitempty" yaml:"events,omitempty"`
	Transitions []TransitionDescription `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// NameDescription mirrors a declared name and its source-language type.
type NameDescription struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// StateDescription mirrors one state; Parent is a state name or empty.
type StateDescription struct {
	Name       string            `json:"name" yaml:"name"`
	Parent     string            `json:"parent,omitempty" yaml:"parent,omitempty"`
	Parameters []NameDescription `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Variables  []NameDescription `json:"variables,omitempty" yaml:"variables,omitempty"`
	Handlers   []string          `json:"handlers,omitempty" yaml:"handlers,omitempty"`
}

// MethodDescription mirrors one method signature.
type MethodDescription struct {
	Name       string            `json:"name" yaml:"name"`
	Parameters []NameDescription `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Returns    string            `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// TransitionDescription mirrors one transition table row. Target is
// empty for pop rows.
type TransitionDescription struct {
	ID     int    `json:"id" yaml:"id"`
	Kind   string `json:"kind" yaml:"kind"`
	Event  string `json:"event,omitempty" yaml:"event,omitempty"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// Describe flattens a machine table into a MachineDescription.
func Describe(mi *frame.MachineInfo) *MachineDescription {
	d := &MachineDescription{
		Name:      mi.Name,
		Variables: describeNames(mi.Variables),
		Interface: describeMethods(mi.Interface),
		Actions:   describeMethods(mi.Actions),
		Events:    describeMethods(mi.Events),
	}
	for _, s := range mi.States {
		sd := StateDescription{
			Name:       s.Name,
			Parameters: describeNames(s.Parameters),
			Variables:  describeNames(s.Variables),
		}
		if s.Parent != nil {
			sd.Parent = s.Parent.Name
		}
		for _, h := range s.Handlers {
			sd.Handlers = append(sd.Handlers, h.Name)
		}
		d.States = append(d.States, sd)
	}
	for _, tr := range mi.Transitions {
		td := TransitionDescription{
			ID:     tr.ID,
			Kind:   tr.Kind.String(),
			Label:  tr.Label,
			Source: tr.Source.Name,
		}
		if tr.Event != nil {
			td.Event = tr.Event.Name
		}
		if tr.Target != nil {
			td.Target = tr.Target.Name
		}
		d.Transitions = append(d.Transitions, td)
	}
	return d
}

func describeNames(names []frame.NameInfo) []NameDescription {
	out := make([]NameDescription, 0, len(names))
	for _, n := range names {
		out = append(out, NameDescription{Name: n.Name, Type: n.Type})
	}
	return out
}

func describeMethods(methods []*frame.MethodInfo) []MethodDescription {
	out := make([]MethodDescription, 0, len(methods))
	for _, m := range methods {
		out = append(out, MethodDescription{
			Name:       m.Name,
			Parameters: describeNames(m.Parameters),
			Returns:    m.ReturnType,
		})
	}
	return out
}

// JSON serializes the description as indented JSON.
func (d *MachineDescription) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// YAML serializes the description as YAML.
func (d *MachineDescription) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// ExportDOT renders the machine table as Graphviz DOT source. States
// nested under a parent render inside that parent's cluster, the state
// named current is filled, change-state edges are dashed, and pop rows
// point at a shared pseudo node since their target is only known live.
func ExportDOT(mi *frame.MachineInfo, current string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph " + mi.Name + " {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	children := make(map[*frame.StateInfo][]*frame.StateInfo)
	for _, s := range mi.States {
		if s.Parent != nil {
			children[s.Parent] = append(children[s.Parent], s)
		}
	}
	for _, s := range mi.States {
		if s.Parent == nil {
			renderState(&buf, s, children, current, "  ")
		}
	}

	hasPop := false
	for _, tr := range mi.Transitions {
		label := tr.Label
		if label == "" && tr.Event != nil {
			label = tr.Event.Name
		}
		attrs := fmt.Sprintf("label=%q", label)
		if !tr.Kind.RunsExitEnter() {
			attrs += ", style=dashed"
		}
		target := ""
		if tr.Kind.IsPop() {
			hasPop = true
			target = "pop"
		} else {
			target = tr.Target.Name
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", tr.Source.Name, target, attrs)
	}
	if hasPop {
		buf.WriteString("  \"pop\" [shape=point, width=0.15];\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func renderState(buf *bytes.Buffer, s *frame.StateInfo, children map[*frame.StateInfo][]*frame.StateInfo, current, indent string) {
	style := ""
	if s.Name == current {
		style = ", style=filled, fillcolor=lightgreen"
	}
	kids := children[s]
	if len(kids) == 0 {
		fmt.Fprintf(buf, "%s%q [label=%q%s];\n", indent, s.Name, s.Name, style)
		return
	}
	fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, s.Name)
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, s.Name)
	fmt.Fprintf(buf, "%s  %q [label=%q, shape=ellipse%s];\n", indent, s.Name, s.Name, style)
	for _, child := range kids {
		renderState(buf, child, children, current, indent+"  ")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

// Fingerprint computes a stable identity for a machine shape: the first
// 16 hex characters of the SHA-256 of its canonical JSON description.
// Identical tables produce identical fingerprints across processes.
func Fingerprint(mi *frame.MachineInfo) string {
	data, err := json.Marshal(Describe(mi))
	if err != nil {
		// A description is plain data; this cannot happen for a built table.
		panic(fmt.Sprintf("observe: describe %s: %v", mi.Name, err))
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
