package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stealthrocket/itergen/compiler"
)

func newInspectCommand(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect [PATH]",
		Short: "Print the state machine layout of generator functions without writing files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := compilerOptions(cmd, opts)
			if err != nil {
				return err
			}
			layouts, err := compiler.Inspect(cmd.Context(), packagePath(args), options...)
			if err != nil {
				return err
			}
			return writeLayouts(cmd.OutOrStdout(), format, layouts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, yaml or json)")
	return cmd
}

// layoutReport is the serialized form of a compiler.Layout.
type layoutReport struct {
	Package     string        `yaml:"package"`
	Func        string        `yaml:"func"`
	Type        string        `yaml:"type"`
	Constructor string        `yaml:"constructor"`
	Elem        string        `yaml:"elem"`
	States      []stateReport `yaml:"states"`
	Slots       []slotReport  `yaml:"slots,omitempty"`
	Locals      []string      `yaml:"locals,flow,omitempty"`
}

type stateReport struct {
	ID   int      `yaml:"id"`
	Kind string   `yaml:"kind"`
	Pos  string   `yaml:"pos,omitempty"`
	Live []string `yaml:"live,flow,omitempty"`
}

type slotReport struct {
	Field    string `yaml:"field"`
	Binding  string `yaml:"binding"`
	Kind     string `yaml:"kind"`
	Type     string `yaml:"type"`
	Captured bool   `yaml:"captured,omitempty"`
	LiveAt   []int  `yaml:"live_at,flow,omitempty"`
}

func newLayoutReport(l *compiler.Layout) layoutReport {
	r := layoutReport{
		Package:     l.Package,
		Func:        l.Func,
		Type:        l.Type,
		Constructor: l.Constructor,
		Elem:        l.Elem,
		Locals:      l.Locals,
	}
	for _, s := range l.States {
		r.States = append(r.States, stateReport{ID: s.ID, Kind: s.Kind.String(), Pos: s.Pos, Live: s.Live})
	}
	for _, s := range l.Slots {
		r.Slots = append(r.Slots, slotReport{
			Field:    s.Field,
			Binding:  s.Binding,
			Kind:     s.Kind.String(),
			Type:     s.Type,
			Captured: s.Captured,
			LiveAt:   s.LiveAt,
		})
	}
	return r
}

// asMap converts the report to the values accepted by structpb.
func (r layoutReport) asMap() map[string]any {
	states := make([]any, len(r.States))
	for i, s := range r.States {
		states[i] = map[string]any{
			"id":   s.ID,
			"kind": s.Kind,
			"pos":  s.Pos,
			"live": strings2any(s.Live),
		}
	}
	slots := make([]any, len(r.Slots))
	for i, s := range r.Slots {
		liveAt := make([]any, len(s.LiveAt))
		for j, id := range s.LiveAt {
			liveAt[j] = id
		}
		slots[i] = map[string]any{
			"field":    s.Field,
			"binding":  s.Binding,
			"kind":     s.Kind,
			"type":     s.Type,
			"captured": s.Captured,
			"liveAt":   liveAt,
		}
	}
	return map[string]any{
		"package":     r.Package,
		"func":        r.Func,
		"type":        r.Type,
		"constructor": r.Constructor,
		"elem":        r.Elem,
		"states":      states,
		"slots":       slots,
		"locals":      strings2any(r.Locals),
	}
}

func strings2any(values []string) []any {
	s := make([]any, len(values))
	for i, v := range values {
		s[i] = v
	}
	return s
}

func writeLayouts(w io.Writer, format string, layouts []*compiler.Layout) error {
	reports := make([]layoutReport, len(layouts))
	for i, l := range layouts {
		reports[i] = newLayoutReport(l)
	}

	switch format {
	case "table":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeTable(w, r)
		}
		return nil

	case "yaml":
		b, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err

	case "json":
		values := make([]any, len(reports))
		for i, r := range reports {
			values[i] = r.asMap()
		}
		list, err := structpb.NewList(values)
		if err != nil {
			return err
		}
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(list)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	default:
		return fmt.Errorf("unknown output format %q (expected table, yaml or json)", format)
	}
}

func writeTable(w io.Writer, r layoutReport) {
	states := table.NewWriter()
	states.SetOutputMirror(w)
	states.SetStyle(table.StyleLight)
	states.SetTitle("%s (%s, emits %s)", r.Func, r.Type, r.Elem)
	states.AppendHeader(table.Row{"State", "Kind", "Suspend point", "Live"})
	for _, s := range r.States {
		states.AppendRow(table.Row{s.ID, s.Kind, s.Pos, strings.Join(s.Live, " ")})
	}
	states.Render()

	if len(r.Slots) > 0 {
		slots := table.NewWriter()
		slots.SetOutputMirror(w)
		slots.SetStyle(table.StyleLight)
		slots.AppendHeader(table.Row{"Field", "Binding", "Kind", "Type", "Captured", "Live at"})
		for _, s := range r.Slots {
			liveAt := make([]string, len(s.LiveAt))
			for i, id := range s.LiveAt {
				liveAt[i] = strconv.Itoa(id)
			}
			slots.AppendRow(table.Row{s.Field, s.Binding, s.Kind, s.Type, s.Captured, strings.Join(liveAt, " ")})
		}
		slots.Render()
	}
	if len(r.Locals) > 0 {
		fmt.Fprintf(w, "locals: %s\n", strings.Join(r.Locals, " "))
	}
}
