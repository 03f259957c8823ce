// Package dwarfdump extracts type and function records from the DWARF debug
// information of an ELF binary, producing the descriptor units that
// `cref sizeof` compares.
package dwarfdump

import (
	"debug/dwarf"
	"debug/elf"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shinh/cref/internal/descriptor"
	"github.com/shinh/cref/internal/typereg"
)

var (
	ErrNotELF  = errors.New("dwarfdump: not an ELF file")
	ErrNoDWARF = errors.New("dwarfdump: no DWARF data")
)

const (
	anonymous   = "<anonymous>"
	funcName    = "<func>"
	varargsName = "..."
	voidName    = "void"
)

// Open reads the DWARF data of the ELF file at path and dumps it.
func Open(path string) ([]descriptor.Unit, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotELF, err)
	}
	defer f.Close()

	d, err := f.DWARF()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDWARF, err)
	}
	return Dump(d)
}

type unitState struct {
	unit      descriptor.Unit
	name      string
	hasExtern bool
}

type funcState struct {
	name  string
	sig   []string
	depth int
	open  bool // still reading leading parameters
}

// Dump walks every compilation unit of d. A unit is emitted only when it
// defines at least one named external function; its type map then holds
// every named base, struct, union, enum and typedef entry of the unit.
func Dump(d *dwarf.Data) ([]descriptor.Unit, error) {
	var (
		units []*unitState
		cu    *unitState
		fn    *funcState
		depth int
	)

	r := d.Reader()
	for {
		e, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("reading DWARF entry: %w", err)
		}
		if e == nil {
			break
		}
		if e.Tag == 0 {
			depth--
			continue
		}
		if fn != nil && depth <= fn.depth {
			fn = nil
		}

		switch e.Tag {
		case dwarf.TagCompileUnit:
			name, _ := e.Val(dwarf.AttrName).(string)
			cu = &unitState{name: name, unit: descriptor.Unit{
				Types: make(typereg.Unit),
				Funcs: make(map[string][]string),
			}}
			units = append(units, cu)
			log.Debugf("CU %d: %s", len(units)-1, name)

		case dwarf.TagBaseType, dwarf.TagTypedef, dwarf.TagStructType, dwarf.TagUnionType, dwarf.TagEnumerationType:
			if cu == nil {
				break
			}
			name, rec, ok, err := typeRecord(d, e)
			if err != nil {
				return nil, err
			}
			if ok {
				cu.unit.Types[name] = rec
			}

		case dwarf.TagSubprogram:
			name, _ := e.Val(dwarf.AttrName).(string)
			external, _ := e.Val(dwarf.AttrExternal).(bool)
			if cu == nil || name == "" || !external {
				break
			}
			ret, err := typeNameAt(d, e)
			if err != nil {
				return nil, err
			}
			fn = &funcState{name: name, sig: []string{ret}, depth: depth, open: true}
			cu.hasExtern = true
			cu.unit.Funcs[name] = fn.sig

		case dwarf.TagFormalParameter, dwarf.TagUnspecifiedParameters:
			if fn == nil || !fn.open || depth != fn.depth+1 {
				break
			}
			arg := varargsName
			if e.Tag == dwarf.TagFormalParameter {
				if arg, err = typeNameAt(d, e); err != nil {
					return nil, err
				}
			}
			fn.sig = append(fn.sig, arg)
			cu.unit.Funcs[fn.name] = fn.sig
		}

		if fn != nil && depth == fn.depth+1 && e.Tag != dwarf.TagFormalParameter && e.Tag != dwarf.TagUnspecifiedParameters {
			fn.open = false
		}
		if e.Children {
			depth++
		}
	}

	var out []descriptor.Unit
	for _, u := range units {
		if !u.hasExtern {
			continue
		}
		log.Debugf("%s: %d types, %d functions", u.name, len(u.unit.Types), len(u.unit.Funcs))
		out = append(out, u.unit)
	}
	return out, nil
}

// typeRecord converts a type entry to a record. ok is false for entries that
// are not recorded: unnamed aggregates and typedefs aliasing their own name.
func typeRecord(d *dwarf.Data, e *dwarf.Entry) (name string, rec typereg.Record, ok bool, err error) {
	name, _ = e.Val(dwarf.AttrName).(string)
	size, _ := e.Val(dwarf.AttrByteSize).(int64)
	if size < 0 {
		size = 0
	}

	switch e.Tag {
	case dwarf.TagBaseType:
		if name == "" {
			name = typereg.Placeholder
		}
		return name, typereg.Base(int(size)), true, nil

	case dwarf.TagTypedef:
		if name == "" {
			return "", rec, false, nil
		}
		t, err := d.Type(e.Offset)
		if err != nil {
			return "", rec, false, fmt.Errorf("typedef %s at %#x: %w", name, e.Offset, err)
		}
		alias := anonymous
		if tt, isTypedef := t.(*dwarf.TypedefType); isTypedef {
			alias = TypeName(tt.Type)
		}
		if alias == name {
			return "", rec, false, nil
		}
		return name, typereg.Typedef(alias), true, nil

	default:
		if name == "" {
			return "", rec, false, nil
		}
		if decl, _ := e.Val(dwarf.AttrDeclaration).(bool); decl {
			size = 0
		}
		return name, typereg.Struct(int(size)), true, nil
	}
}

// typeNameAt names the type referenced by e's DW_AT_type, or "void".
func typeNameAt(d *dwarf.Data, e *dwarf.Entry) (string, error) {
	off, ok := e.Val(dwarf.AttrType).(dwarf.Offset)
	if !ok {
		return voidName, nil
	}
	t, err := d.Type(off)
	if err != nil {
		return "", fmt.Errorf("type at %#x: %w", off, err)
	}
	return TypeName(t), nil
}

// TypeName returns the display name of t as used in typedef targets and
// function signatures. Typedefs and qualifiers are looked through; pointers
// and arrays are spelled with "*" and "[]" suffixes.
func TypeName(t dwarf.Type) string {
	switch t := t.(type) {
	case nil:
		return voidName
	case *dwarf.TypedefType:
		return TypeName(t.Type)
	case *dwarf.QualType:
		return TypeName(t.Type)
	case *dwarf.PtrType:
		if _, isVoid := t.Type.(*dwarf.VoidType); isVoid || t.Type == nil {
			return "void*"
		}
		return TypeName(t.Type) + "*"
	case *dwarf.ArrayType:
		return TypeName(t.Type) + "[]"
	case *dwarf.StructType:
		if t.StructName == "" {
			return anonymous
		}
		return t.StructName
	case *dwarf.EnumType:
		if t.EnumName == "" {
			return anonymous
		}
		return t.EnumName
	case *dwarf.FuncType:
		return funcName
	case *dwarf.VoidType:
		return voidName
	case interface{ Basic() *dwarf.BasicType }:
		if name := t.Basic().Name; name != "" {
			return name
		}
		return typereg.Placeholder
	default:
		return t.String()
	}
}
