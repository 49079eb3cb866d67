package marker

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"
)

// Table is the build-time metadata table: a mapping from (member, kind)
// to zero or one marker. It is populated once per declaration scope and
// never mutated by queries.
type Table struct {
	members map[string][]Marker
}

// Load builds the marker table for every Go file in dir. A member with
// two markers of the same kind makes Load fail: the configuration is
// ambiguous and must not be silently resolved.
func Load(dir string) (*Table, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return strings.HasSuffix(fi.Name(), ".go")
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("marker: parse %s: %w", dir, err)
	}

	t := newTable()
	for _, pkg := range pkgs {
		names := make([]string, 0, len(pkg.Files))
		for name := range pkg.Files {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := t.addFile(fset, pkg.Files[name]); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// LoadFile builds the marker table for a single source file.
func LoadFile(path string) (*Table, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("marker: parse %s: %w", path, err)
	}
	t := newTable()
	if err := t.addFile(fset, file); err != nil {
		return nil, err
	}
	return t, nil
}

// Has reports whether exactly one marker of the given kind is attached
// to member within the declaration scope rooted at dir. Loading errors,
// duplicate markers included, are returned as-is.
func Has(dir, member, kind string) (bool, error) {
	t, err := Load(dir)
	if err != nil {
		return false, err
	}
	return t.Has(member, kind), nil
}

func newTable() *Table {
	return &Table{members: make(map[string][]Marker)}
}

func (t *Table) addFile(fset *token.FileSet, file *ast.File) error {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		member := memberName(fn)
		for _, c := range fn.Doc.List {
			m, ok := parseDirective(c.Text)
			if !ok {
				continue
			}
			m.Line = fset.Position(c.Pos()).Line
			for _, prev := range t.members[member] {
				if prev.Kind == m.Kind {
					return fmt.Errorf("marker: duplicate %q marker on %s (line %d)", m.Kind, member, m.Line)
				}
			}
			t.members[member] = append(t.members[member], m)
		}
	}
	return nil
}

// memberName names methods Receiver.Method so a marker query can target
// a member of a named declaration scope.
func memberName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}
	return receiverName(fn.Recv.List[0].Type) + "." + fn.Name.Name
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	}
	return ""
}

// Has reports whether exactly one marker of kind is attached to member.
func (t *Table) Has(member, kind string) bool {
	for _, m := range t.members[member] {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

// Payload returns the payload of the member's marker of the given kind.
// The second result is false when the marker is absent or is a bare tag.
func (t *Table) Payload(member, kind string) (string, bool) {
	for _, m := range t.members[member] {
		if m.Kind == kind {
			return m.Payload, m.HasPayload
		}
	}
	return "", false
}

// Markers returns a copy of the markers attached to member.
func (t *Table) Markers(member string) []Marker {
	return append([]Marker(nil), t.members[member]...)
}

// Members returns the marked declaration names in sorted order.
func (t *Table) Members() []string {
	out := make([]string, 0, len(t.members))
	for name := range t.members {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
