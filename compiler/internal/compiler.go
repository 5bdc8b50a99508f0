package internal

import (
	"fmt"
	"io"
)

// Compile reads hydrogen source from rd and writes nasm assembly to w. The program is parsed
// completely before any code is generated, so nothing is written to w when the source is
// rejected.
func Compile(rd io.Reader, w io.Writer) error {
	program, err := Parse(rd)
	if err != nil {
		return fmt.Errorf("compiler: parse failed: %w", err)
	}
	return Generate(program, w)
}

// Generate writes the assembly of an already parsed program to w.
func Generate(program *ProgramAst, w io.Writer) error {
	err := NewCodeGenerator(w).Generate(program)
	if err != nil {
		return fmt.Errorf("compiler: generate codes failed: %w", err)
	}
	return nil
}
