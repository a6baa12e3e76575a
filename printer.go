// printer.go — value formatting, canonical source formatting, AST dump.
//
// Three surfaces share this file:
//   - FormatValue renders runtime values for the "print" builtin and the
//     REPL (null prints as "<null>" here, unlike the "+" coercion).
//   - FormatProgram renders a parsed program back to canonical source.
//     Compound subexpressions are fully parenthesized, which makes the
//     formatter a fixed point: format(parse(format(parse(src)))) equals
//     format(parse(src)).
//   - DumpProgram renders the tree itself, one node per line, for
//     debugging and parser tests.
package minilang

import (
	"math"
	"strconv"
	"strings"
)

/* ---------- small writer with indentation ---------- */

type out struct {
	b     *strings.Builder
	depth int
}

func (o *out) write(s string) { o.b.WriteString(s) }
func (o *out) nl()            { o.b.WriteByte('\n') }
func (o *out) pad() {
	for i := 0; i < o.depth; i++ {
		o.b.WriteString("  ")
	}
}
func (o *out) line(s string)        { o.pad(); o.b.WriteString(s); o.nl() }
func (o *out) withIndent(fn func()) { o.depth++; fn(); o.depth-- }

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat renders a float for display; whole values keep a ".0" so
// they read as floats.
func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// floatLit renders a float as a lexable literal (no exponent notation,
// always a fractional part).
func floatLit(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

/* ---------- runtime value formatting ---------- */

// FormatValue renders a runtime Value:
//
//	null          <null>
//	int / float   decimal text
//	bool          true / false
//	string        the characters, no quotes
//	function      <function>
//	tuple         (v0, v1, ...)
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNull:
		return "<null>"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return formatFloat(v.Data.(float64))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTStr:
		return v.Data.(string)
	case VTFun:
		return "<function>"
	case VTTuple:
		parts := make([]string, 0, len(v.Data.([]Value)))
		for _, el := range v.Data.([]Value) {
			parts = append(parts, FormatValue(el))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return "<unknown>"
}

/* ---------- canonical source formatting ---------- */

// FormatProgram renders a program as canonical minilang source.
func FormatProgram(p *Program) string {
	var b strings.Builder
	f := fmtr{out: out{b: &b}}
	for _, st := range p.Stmts {
		f.stmt(st)
	}
	return strings.TrimRight(b.String(), "\n")
}

type fmtr struct {
	out
}

func (f *fmtr) stmt(st Stmt) {
	switch s := st.(type) {
	case *ExprStmt:
		if s.X == nil {
			f.line(";")
			return
		}
		f.line(f.expr(s.X) + ";")
	case *VarDeclStmt:
		f.line("const " + s.Name + " = " + f.expr(s.Init) + ";")
	case *ReturnStmt:
		if s.Value == nil {
			f.line("return;")
			return
		}
		f.line("return " + f.expr(s.Value) + ";")
	case *BlockStmt:
		f.line("{")
		f.withIndent(func() {
			for _, inner := range s.Stmts {
				f.stmt(inner)
			}
		})
		f.line("}")
	case *IfStmt:
		f.pad()
		f.write("if (" + f.expr(s.Cond) + ") ")
		f.blockInline(s.Then)
		if s.Else != nil {
			f.write(" else ")
			f.blockInline(s.Else)
		}
		f.nl()
	case *ForStmt:
		f.pad()
		f.write("for (")
		switch {
		case s.InitDecl != nil:
			f.write("const " + s.InitDecl.Name + " = " + f.expr(s.InitDecl.Init))
		case s.InitExpr != nil:
			f.write(f.expr(s.InitExpr))
		}
		f.write(";")
		if s.Cond != nil {
			f.write(" " + f.expr(s.Cond))
		}
		f.write(";")
		if s.Post != nil {
			f.write(" " + f.expr(s.Post))
		}
		f.write(") ")
		f.blockInline(s.Body)
		f.nl()
	case *FuncDeclStmt:
		f.pad()
		f.write("fun ")
		if s.ReturnType != "" {
			f.write(s.ReturnType + " ")
		}
		f.write(s.Name + "(")
		for i, prm := range s.Params {
			if i > 0 {
				f.write(", ")
			}
			f.write(prm.Name)
			if prm.Type != "" {
				f.write(": " + prm.Type)
			}
		}
		f.write(") ")
		f.blockInline(s.Body)
		f.nl()
	}
}

// blockInline writes a braced block starting on the current line.
func (f *fmtr) blockInline(blk *BlockStmt) {
	f.write("{")
	f.nl()
	f.withIndent(func() {
		for _, st := range blk.Stmts {
			f.stmt(st)
		}
	})
	f.pad()
	f.write("}")
}

func (f *fmtr) expr(e Expr) string {
	switch x := e.(type) {
	case *LiteralExpr:
		switch x.Val.Tag {
		case VTInt:
			return strconv.FormatInt(x.Val.Data.(int64), 10)
		case VTNum:
			return floatLit(x.Val.Data.(float64))
		case VTBool:
			return strconv.FormatBool(x.Val.Data.(bool))
		case VTStr:
			return quoteString(x.Val.Data.(string))
		}
		return "<lit>"
	case *IdentifierExpr:
		return x.Name
	case *UnaryExpr:
		return "-" + f.expr(x.Rhs)
	case *BinaryExpr:
		return "(" + f.expr(x.Lhs) + " " + x.Op + " " + f.expr(x.Rhs) + ")"
	case *CallExpr:
		parts := make([]string, 0, len(x.Args))
		for _, a := range x.Args {
			parts = append(parts, f.expr(a))
		}
		return f.expr(x.Callee) + "(" + strings.Join(parts, ", ") + ")"
	case *TupleExpr:
		parts := make([]string, 0, len(x.Elems))
		for _, el := range x.Elems {
			parts = append(parts, f.expr(el))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *AssignExpr:
		return x.Target + " = " + f.expr(x.Value)
	}
	return "<expr>"
}

/* ---------- AST dump ---------- */

// DumpProgram renders the tree one node per line, children indented.
func DumpProgram(p *Program) string {
	var b strings.Builder
	d := dumper{out: out{b: &b}}
	d.line("Program:")
	d.withIndent(func() {
		for _, st := range p.Stmts {
			d.stmt(st)
		}
	})
	return b.String()
}

type dumper struct {
	out
}

func (d *dumper) stmt(st Stmt) {
	switch s := st.(type) {
	case *ExprStmt:
		if s.X == nil {
			d.line("ExprStmt(empty)")
			return
		}
		d.line("ExprStmt:")
		d.withIndent(func() { d.expr(s.X) })
	case *VarDeclStmt:
		d.line("VarDecl(const " + s.Name + ")")
		d.withIndent(func() { d.expr(s.Init) })
	case *ReturnStmt:
		d.line("Return:")
		if s.Value != nil {
			d.withIndent(func() { d.expr(s.Value) })
		}
	case *BlockStmt:
		d.line("Block:")
		d.withIndent(func() {
			for _, inner := range s.Stmts {
				d.stmt(inner)
			}
		})
	case *IfStmt:
		d.line("If:")
		d.withIndent(func() {
			d.line("Cond:")
			d.withIndent(func() { d.expr(s.Cond) })
			d.line("Then:")
			d.withIndent(func() { d.stmt(s.Then) })
			if s.Else != nil {
				d.line("Else:")
				d.withIndent(func() { d.stmt(s.Else) })
			}
		})
	case *ForStmt:
		d.line("For:")
		d.withIndent(func() {
			if s.InitDecl != nil {
				d.line("Init:")
				d.withIndent(func() { d.stmt(s.InitDecl) })
			}
			if s.InitExpr != nil {
				d.line("Init:")
				d.withIndent(func() { d.expr(s.InitExpr) })
			}
			if s.Cond != nil {
				d.line("Cond:")
				d.withIndent(func() { d.expr(s.Cond) })
			}
			if s.Post != nil {
				d.line("Post:")
				d.withIndent(func() { d.expr(s.Post) })
			}
			d.line("Body:")
			d.withIndent(func() { d.stmt(s.Body) })
		})
	case *FuncDeclStmt:
		hdr := "FuncDecl("
		if s.ReturnType != "" {
			hdr += s.ReturnType + " "
		}
		hdr += s.Name + ")"
		d.line(hdr)
		d.withIndent(func() {
			for _, prm := range s.Params {
				if prm.Type != "" {
					d.line("Param(" + prm.Name + ": " + prm.Type + ")")
				} else {
					d.line("Param(" + prm.Name + ")")
				}
			}
			d.stmt(s.Body)
		})
	}
}

func (d *dumper) expr(e Expr) {
	switch x := e.(type) {
	case *LiteralExpr:
		switch x.Val.Tag {
		case VTStr:
			d.line("Literal(" + quoteString(x.Val.Data.(string)) + ")")
		default:
			d.line("Literal(" + FormatValue(x.Val) + ")")
		}
	case *IdentifierExpr:
		d.line("Identifier(" + x.Name + ")")
	case *UnaryExpr:
		d.line("Unary(" + x.Op + ")")
		d.withIndent(func() { d.expr(x.Rhs) })
	case *BinaryExpr:
		d.line("Binary('" + x.Op + "')")
		d.withIndent(func() {
			d.expr(x.Lhs)
			d.expr(x.Rhs)
		})
	case *CallExpr:
		d.line("Call:")
		d.withIndent(func() {
			d.line("Callee:")
			d.withIndent(func() { d.expr(x.Callee) })
			if len(x.Args) > 0 {
				d.line("Args:")
				d.withIndent(func() {
					for _, a := range x.Args {
						d.expr(a)
					}
				})
			}
		})
	case *TupleExpr:
		d.line("Tuple:")
		d.withIndent(func() {
			for _, el := range x.Elems {
				d.expr(el)
			}
		})
	case *AssignExpr:
		d.line("Assign(" + x.Target + ")")
		d.withIndent(func() { d.expr(x.Value) })
	}
}
