// Package clockfmt compiles format descriptions into formatters and parsers
// for clock times. It lives behind the clock package's Formattable and
// Parsable interfaces, keeping the arithmetic core free of text I/O.
package clockfmt

import (
	"strings"
)

type itemKind int

const (
	literalItem itemKind = iota
	hourItem
	minuteItem
	secondItem
	subsecondItem
)

type item struct {
	kind    itemKind
	literal string // literalItem only
	noPad   bool   // hourItem: render without zero padding
	digits  int    // subsecondItem: fixed width 1..9, or 0 for minimal
}

// Description is a compiled format description. It is immutable after Parse
// and safe for concurrent use.
type Description struct {
	items []item
}

// Parse compiles a format description such as
// "[hour]:[minute]:[second].[subsecond]". Components are written in
// brackets, optionally followed by space-separated modifiers:
//
//	[hour padding:none]   unpadded clock hour
//	[subsecond digits:3]  fixed three-digit fraction
//	[subsecond]           minimal-width fraction
//
// A literal [ is written [[.
func Parse(desc string) (*Description, error) {
	var items []item
	for len(desc) > 0 {
		open := strings.IndexByte(desc, '[')
		if open < 0 {
			items = append(items, item{kind: literalItem, literal: desc})
			break
		}
		if open > 0 {
			items = append(items, item{kind: literalItem, literal: desc[:open]})
			desc = desc[open:]
		}
		if strings.HasPrefix(desc, "[[") {
			items = append(items, item{kind: literalItem, literal: "["})
			desc = desc[2:]
			continue
		}
		close := strings.IndexByte(desc, ']')
		if close < 0 {
			return nil, &InvalidDescriptionError{Reason: "unclosed component bracket"}
		}
		it, err := parseComponent(desc[1:close])
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		desc = desc[close+1:]
	}
	return &Description{items: items}, nil
}

// MustParse is Parse for descriptions known to be valid at compile time; it
// panics on error.
func MustParse(desc string) *Description {
	d, err := Parse(desc)
	if err != nil {
		panic(err)
	}
	return d
}

func parseComponent(body string) (item, error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return item{}, &InvalidDescriptionError{Reason: "empty component"}
	}
	name, modifiers := fields[0], fields[1:]

	var it item
	switch name {
	case "hour":
		it.kind = hourItem
	case "minute":
		it.kind = minuteItem
	case "second":
		it.kind = secondItem
	case "subsecond":
		it.kind = subsecondItem
	default:
		return item{}, &InvalidDescriptionError{Component: name, Reason: "unknown component"}
	}

	for _, mod := range modifiers {
		key, value, found := strings.Cut(mod, ":")
		if !found {
			return item{}, &InvalidDescriptionError{Component: name, Reason: "malformed modifier " + mod}
		}
		switch {
		case it.kind == hourItem && key == "padding":
			switch value {
			case "zero":
				it.noPad = false
			case "none":
				it.noPad = true
			default:
				return item{}, &InvalidDescriptionError{Component: name, Reason: "unknown padding " + value}
			}
		case it.kind == subsecondItem && key == "digits":
			if value == "auto" {
				it.digits = 0
				continue
			}
			if len(value) != 1 || value[0] < '1' || value[0] > '9' {
				return item{}, &InvalidDescriptionError{Component: name, Reason: "digits must be 1..9 or auto"}
			}
			it.digits = int(value[0] - '0')
		default:
			return item{}, &InvalidDescriptionError{Component: name, Reason: "unknown modifier " + key}
		}
	}
	return it, nil
}
