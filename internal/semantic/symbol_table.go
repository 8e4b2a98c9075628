// Package semantic walks a MiniLang AST, populating a flat symbol table
// and collecting declaration-before-use, redeclaration, and type errors.
package semantic

import "fmt"

// Kind classifies what a Symbol names. MiniLang's grammar only ever
// declares variables, but Kind is kept as an enumeration (rather than
// collapsed to a bool) so a future constant-folding pass has somewhere
// to record CONSTANT without reshaping the table.
type Kind int

const (
	Variable Kind = iota
	Constant
)

func (k Kind) String() string {
	if k == Constant {
		return "CONSTANT"
	}
	return "VARIABLE"
}

// DataType is the result type a symbol or expression carries. Unknown is
// the lattice bottom: it unifies with anything so a single prior error
// does not cascade into a flood of unrelated ones.
type DataType int

const (
	Unknown DataType = iota
	Int
	Float
	Bool
)

func (d DataType) String() string {
	switch d {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Symbol is one entry in a SymbolTable.
type Symbol struct {
	Name        string
	Kind        Kind
	DataType    DataType
	Value       float64
	DeclLine    int
	Initialized bool
	Used        bool
}

// SymbolTable is a flat, insertion-ordered mapping from name to Symbol.
// There is a single global namespace: MiniLang has no nested scopes.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Declare inserts a new symbol. It fails if name is already present.
func (t *SymbolTable) Declare(name string, kind Kind, line int) error {
	if _, exists := t.symbols[name]; exists {
		return fmt.Errorf("%q already declared", name)
	}
	t.symbols[name] = &Symbol{
		Name:     name,
		Kind:     kind,
		DataType: Unknown,
		DeclLine: line,
	}
	t.order = append(t.order, name)
	return nil
}

// DeclareConstant is Declare specialized to Kind Constant. MiniLang's
// grammar never produces a constant declaration today, but the
// operation is exposed alongside Declare so a future `const` statement
// has a natural home without touching the table's shape.
func (t *SymbolTable) DeclareConstant(name string, line int) error {
	return t.Declare(name, Constant, line)
}

// Lookup returns the symbol named name, or nil if absent. It does not
// mutate the table.
func (t *SymbolTable) Lookup(name string) *Symbol {
	return t.symbols[name]
}

// Exists reports whether name has been declared.
func (t *SymbolTable) Exists(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// MarkUsed records that name was read as an expression operand. Calling
// it on an undeclared name is a programmer error inside the analyzer,
// not a source-program error, and panics.
func (t *SymbolTable) MarkUsed(name string) {
	sym, ok := t.symbols[name]
	if !ok {
		panic(fmt.Sprintf("semantic: MarkUsed on undeclared symbol %q", name))
	}
	sym.Used = true
}

// MarkInitialized records that name has been the target of a successful
// assignment. Calling it on an undeclared name panics, for the same
// reason as MarkUsed.
func (t *SymbolTable) MarkInitialized(name string) {
	sym, ok := t.symbols[name]
	if !ok {
		panic(fmt.Sprintf("semantic: MarkInitialized on undeclared symbol %q", name))
	}
	sym.Initialized = true
}

// UpdateValue sets a symbol's concrete value, marks it initialized, and
// infers its DataType from the value if the type is still Unknown. The
// analyzer never calls this today — it only tracks initialization, not
// values — but it is kept for a possible future constant-folding pass.
func (t *SymbolTable) UpdateValue(name string, value float64, isFloat bool) {
	sym, ok := t.symbols[name]
	if !ok {
		panic(fmt.Sprintf("semantic: UpdateValue on undeclared symbol %q", name))
	}
	sym.Value = value
	sym.Initialized = true
	if sym.DataType == Unknown {
		if isFloat {
			sym.DataType = Float
		} else {
			sym.DataType = Int
		}
	}
}

// AllSymbols returns a snapshot of every declared symbol in insertion
// order.
func (t *SymbolTable) AllSymbols() []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.symbols[name])
	}
	return out
}

// Warnings derives the end-of-traversal "declared but never used" and
// "used but may be uninitialized" warnings from the table's current
// state. It is a pure function of the symbols already recorded.
func (t *SymbolTable) Warnings() []string {
	var warnings []string
	for _, name := range t.order {
		sym := t.symbols[name]
		switch {
		case !sym.Used:
			warnings = append(warnings, fmt.Sprintf("variable '%s' declared but never used", sym.Name))
		case sym.Used && !sym.Initialized:
			warnings = append(warnings, fmt.Sprintf("variable '%s' used but may be uninitialized", sym.Name))
		}
	}
	return warnings
}
