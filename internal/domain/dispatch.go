package domain

import (
	"fmt"

	m "github.com/mouse-blink/defargs/internal/model"
	"github.com/mouse-blink/defargs/pkg/defargs"
)

// BuildTable turns the ordered variant matrix of callable into its dispatch
// table, preserving matrix order.
func BuildTable(callable m.Callable, variants []m.Variant) m.DispatchTable {
	ref := Reference(variants)
	entries := make([]m.DispatchEntry, 0, len(variants))
	seen := make(map[string]int, len(variants))

	for i, v := range variants {
		entry := buildEntry(ref, v)

		if prev, dup := seen[entry.Key]; dup {
			panic(fmt.Sprintf("domain: variants %d and %d of %s share acceptor %q", prev, i, callable.Name, entry.Key))
		}

		seen[entry.Key] = i
		entries = append(entries, entry)
	}

	return m.DispatchTable{Callable: callable, Entries: entries}
}

func buildEntry(ref, v m.Variant) m.DispatchEntry {
	acceptor := make([]m.AcceptorToken, 0, v.Len()+1)
	argIndex := make(map[string]int, v.Len())

	for _, s := range v.Slots {
		switch s.Kind {
		case m.SlotPositional:
			argIndex[s.Param.Name] = len(acceptor)
			acceptor = append(acceptor, m.AcceptorToken{Kind: m.TokenPositional, Name: s.Param.Name})
		case m.SlotNamed:
			argIndex[s.Param.Name] = len(acceptor)
			acceptor = append(acceptor, m.AcceptorToken{Kind: m.TokenNamed, Name: s.Param.Name})
		case m.SlotDefaultOmitted:
			if !s.Param.HasDefault() {
				panic(fmt.Sprintf("domain: required parameter %q omitted in %v", s.Param.Name, v))
			}
		}
	}

	if v.Rest {
		acceptor = append(acceptor, m.AcceptorToken{Kind: m.TokenRest})
	}

	ordered := CanonicalOrder(ref, v)
	call := make([]m.CallArg, 0, len(ordered))

	for _, s := range ordered {
		if s.Kind == m.SlotDefaultOmitted {
			call = append(call, m.CallArg{Param: s.Param, ArgIndex: -1, Default: s.Param.Default})

			continue
		}

		call = append(call, m.CallArg{Param: s.Param, ArgIndex: argIndex[s.Param.Name]})
	}

	return m.DispatchEntry{Key: AcceptorKey(acceptor), Acceptor: acceptor, Call: call, Variant: v}
}

// AcceptorKey returns the shape key generated code compares against
// defargs.Shape of the caller's arguments.
func AcceptorKey(tokens []m.AcceptorToken) string {
	args := make([]defargs.Arg, 0, len(tokens))

	for _, t := range tokens {
		switch t.Kind {
		case m.TokenPositional:
			args = append(args, defargs.Pos(nil))
		case m.TokenNamed:
			args = append(args, defargs.Named(t.Name, nil))
		case m.TokenRest:
			args = append(args, defargs.Rest())
		}
	}

	return defargs.Shape(args)
}
