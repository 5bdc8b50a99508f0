package assembler

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// The compiler only produces nasm source. Turning it into an executable is delegated to two
// external programs:
// * nasm -felf64 out.asm -o out.o, which assembles the source into an elf64 object file.
// * ld -o out out.o, which links the object file into an executable whose entry is _start.

const (
	defaultAssembler = "nasm"
	defaultLinker    = "ld"
)

// ToolError is returned when an external tool exits with failure. Output holds everything the
// tool wrote to stdout and stderr, unmodified.
type ToolError struct {
	Tool   string
	Args   []string
	Output []byte
	Err    error
}

func (err *ToolError) Error() string {
	return fmt.Sprintf("Assembler: %s %s failed: %v, output:\n%s", err.Tool, strings.Join(err.Args, " "), err.Err,
		err.Output)
}

func (err *ToolError) Unwrap() error {
	return err.Err
}

type Toolchain struct {
	Assembler string
	Linker    string
}

func CreateToolchain() *Toolchain {
	return &Toolchain{Assembler: defaultAssembler, Linker: defaultLinker}
}

// LookUp checks that both tools can be found in PATH.
func (toolchain *Toolchain) LookUp() error {
	for _, tool := range []string{toolchain.Assembler, toolchain.Linker} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("Assembler: cannot find %s: %w", tool, err)
		}
	}
	return nil
}

// Assemble assembles the nasm source at asmPath into an elf64 object file at objPath.
func (toolchain *Toolchain) Assemble(asmPath, objPath string) error {
	return toolchain.run(toolchain.Assembler, "-felf64", asmPath, "-o", objPath)
}

// Link links the object file at objPath into an executable at exePath.
func (toolchain *Toolchain) Link(objPath, exePath string) error {
	return toolchain.run(toolchain.Linker, "-o", exePath, objPath)
}

// Build runs Assemble then Link. Linking is skipped when assembling fails.
func (toolchain *Toolchain) Build(asmPath, objPath, exePath string) error {
	err := toolchain.Assemble(asmPath, objPath)
	if err != nil {
		return err
	}
	return toolchain.Link(objPath, exePath)
}

func (toolchain *Toolchain) run(tool string, args ...string) error {
	log := logrus.WithFields(logrus.Fields{"tool": tool, "args": strings.Join(args, " ")})
	log.Debug("assembler: run external tool")
	output, err := exec.Command(tool, args...).CombinedOutput()
	if err != nil {
		log.WithError(err).Debug("assembler: external tool failed")
		return &ToolError{Tool: tool, Args: args, Output: output, Err: err}
	}
	return nil
}
