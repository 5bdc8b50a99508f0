package internal

// In this file, we defined all ast of hydrogen according to the hydrogen grammar:
//
// Program   := Statement*
// Statement := "exit" "(" Expr ")" ";"
//            | "let" Ident "=" Expr ";"
// Expr      := I64Literal | Ident
//
// Nodes are built once by the parser and never modified afterwards.

type ProgramAst struct {
	Statements []StatementAst
}

type StatementAst interface {
	statementNode()
}

type ExitStatementAst struct {
	Expr ExprAst
}

type LetStatementAst struct {
	Ident string
	Expr  ExprAst
}

func (*ExitStatementAst) statementNode() {}
func (*LetStatementAst) statementNode()  {}

type ExprAst interface {
	exprNode()
}

type I64ExprAst struct {
	Value int64
}

type IdentExprAst struct {
	Name string
}

func (*I64ExprAst) exprNode()   {}
func (*IdentExprAst) exprNode() {}
