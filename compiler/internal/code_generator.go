package internal

import (
	"bufio"
	"fmt"
	"io"
)

const (
	entryPointSymbol = "_start"
	exitSyscall      = 60
	indent           = "  "
)

// CodeGenerator translates a ProgramAst into x86-64 nasm assembly for linux. Values are kept
// on the stack: every expression pushes exactly one slot, exit pops it into rdi.
//
// A CodeGenerator owns its StackTracker and is used for a single program.
type CodeGenerator struct {
	writer  *bufio.Writer
	tracker *StackTracker
	err     error
}

func NewCodeGenerator(w io.Writer) *CodeGenerator {
	generator := &CodeGenerator{writer: bufio.NewWriter(w)}
	generator.tracker = NewStackTracker(generator)
	return generator
}

// Generate writes the whole program. The generated code is:
//
//	global _start
//
//	_start:
//	  statement codes
func (generator *CodeGenerator) Generate(program *ProgramAst) error {
	generator.writeOutput("global " + entryPointSymbol)
	generator.writeOutput("")
	generator.writeOutput(entryPointSymbol + ":")
	for _, statement := range program.Statements {
		generator.generateStatementCode(statement)
	}
	if generator.err != nil {
		return generator.err
	}
	return generator.writer.Flush()
}

func (generator *CodeGenerator) generateStatementCode(statement StatementAst) {
	switch statement := statement.(type) {
	case *ExitStatementAst:
		generator.generateExitStatementCode(statement)
	case *LetStatementAst:
		generator.generateLetStatementCode(statement)
	default:
		panic(fmt.Sprintf("unknown statement type %T", statement))
	}
}

// exit(expr) code:
// expr code
// pop rdi
// mov rax, 60
// syscall
func (generator *CodeGenerator) generateExitStatementCode(statement *ExitStatementAst) {
	generator.generateExpressionCode(statement.Expr)
	generator.tracker.pop("rdi")
	generator.writeInstruction(fmt.Sprintf("mov rax, %d", exitSyscall))
	generator.writeInstruction("syscall")
}

// The variable is the slot pushed by its expression, no copy is made.
func (generator *CodeGenerator) generateLetStatementCode(statement *LetStatementAst) {
	generator.generateExpressionCode(statement.Expr)
	generator.tracker.declare(statement.Ident)
}

func (generator *CodeGenerator) generateExpressionCode(expr ExprAst) {
	switch expr := expr.(type) {
	case *I64ExprAst:
		generator.writeInstruction(fmt.Sprintf("mov rax, %d", expr.Value))
		generator.tracker.push("rax")
	case *IdentExprAst:
		offset, ok := generator.tracker.resolve(expr.Name)
		if !ok {
			// The parser rejects undeclared identifiers.
			panic(fmt.Sprintf("identifier %s has no stack slot", expr.Name))
		}
		generator.tracker.push(fmt.Sprintf("QWORD [rsp + %d]", offset))
	default:
		panic(fmt.Sprintf("unknown expression type %T", expr))
	}
}

func (generator *CodeGenerator) writeInstruction(instruction string) {
	generator.writeOutput(indent + instruction)
}

// writeOutput keeps the first write error and drops everything after it.
func (generator *CodeGenerator) writeOutput(output string) {
	if generator.err != nil {
		return
	}
	_, generator.err = generator.writer.WriteString(output + "\n")
}
