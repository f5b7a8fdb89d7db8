package grammar

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/gocc/gcerrors"
)

// tomlOperatorLevel is the on-disk shape of one precedence level, decoded
// with struct tags the way the teacher's internal/tqw/marshaledtypes.go
// decodes its world-file TOML tables.
type tomlOperatorLevel struct {
	Assoc     string   `toml:"assoc"`
	Terminals []string `toml:"terminals"`
}

type tomlOperatorTable struct {
	Level []tomlOperatorLevel `toml:"level"`
}

// OperatorTableFromTOML parses data as a TOML document of the form:
//
//	[[level]]
//	assoc = "left"
//	terminals = ["+", "-"]
//
//	[[level]]
//	assoc = "right"
//	terminals = ["^"]
//
// with levels listed loosest-to-tightest binding, same as NewOperatorTable
// (spec §3 "Operator table"). This is a second, convenience construction
// path alongside the structured-value OperatorLevel API; it does not read
// from a file itself, only from an already-loaded []byte, so no file I/O is
// introduced into the grammar-description data structure's input surface.
func OperatorTableFromTOML(data []byte) (OperatorTable, error) {
	var doc tomlOperatorTable
	if err := toml.Unmarshal(data, &doc); err != nil {
		return OperatorTable{}, gcerrors.Grammar("parsing operator table TOML: %s", err.Error())
	}

	levels := make([]OperatorLevel, 0, len(doc.Level))
	for i, lvl := range doc.Level {
		assoc, err := parseAssoc(lvl.Assoc)
		if err != nil {
			return OperatorTable{}, gcerrors.Grammar("operator table level %d: %s", i+1, err.Error())
		}
		levels = append(levels, OperatorLevel{Assoc: assoc, Terminals: lvl.Terminals})
	}

	return NewOperatorTable(levels...)
}

func parseAssoc(s string) (Associativity, error) {
	switch s {
	case "left":
		return LeftAssoc, nil
	case "right":
		return RightAssoc, nil
	case "nonassoc", "":
		return NonAssoc, nil
	default:
		return NonAssoc, fmt.Errorf("unknown associativity %q (want left, right, or nonassoc)", s)
	}
}
