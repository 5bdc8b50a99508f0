package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/xiaobogaga/hydrogen/assembler"
	"github.com/xiaobogaga/hydrogen/compiler/internal"
)

var (
	path     = flag.String("path", "./main.hy", "the path of hydrogen source file needs to be compiled")
	output   = flag.String("o", "./target/out.asm", "the path of generated nasm file")
	object   = flag.String("obj", "", "the path of object file, defaults to the nasm path with .o extension")
	binary   = flag.String("bin", "./out", "the path of linked executable")
	skipLink = flag.Bool("skip_link", false, "whether stop after generating nasm file")
	dumpAst  = flag.Bool("dump_ast", false, "whether print the parsed ast")
	verbose  = flag.Bool("v", false, "whether print debug logs, including all tokens")
)

type buildOptions struct {
	sourcePath string
	asmPath    string
	objPath    string
	binPath    string
	skipLink   bool
	dumpAst    bool
}

func main() {
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	opts := buildOptions{
		sourcePath: *path,
		asmPath:    *output,
		objPath:    *object,
		binPath:    *binary,
		skipLink:   *skipLink,
		dumpAst:    *dumpAst,
	}
	if opts.objPath == "" {
		opts.objPath = strings.TrimSuffix(opts.asmPath, filepath.Ext(opts.asmPath)) + ".o"
	}
	err := build(opts, assembler.CreateToolchain())
	if err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func build(opts buildOptions, toolchain *assembler.Toolchain) error {
	log := logrus.WithField("path", opts.sourcePath)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		err := dumpTokens(opts.sourcePath)
		if err != nil {
			return err
		}
	}
	log.Info("compiler: start parsing")
	source, err := os.Open(opts.sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()
	program, err := internal.Parse(source)
	if err != nil {
		return fmt.Errorf("compiler: parse failed: %w", err)
	}
	if opts.dumpAst {
		litter.Dump(program)
	}
	log.Info("compiler: start generating codes")
	buf := &bytes.Buffer{}
	err = internal.Generate(program, buf)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(opts.asmPath), 0755)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(opts.asmPath, buf.Bytes(), 0644)
	if err != nil {
		return err
	}
	log.WithField("output", opts.asmPath).Info("compiler: saved nasm file")
	if opts.skipLink {
		return nil
	}
	log.Info("compiler: start assembling and linking")
	err = toolchain.Build(opts.asmPath, opts.objPath, opts.binPath)
	if err != nil {
		return err
	}
	log.WithField("output", opts.binPath).Info("compiler: saved executable")
	return nil
}

func dumpTokens(sourcePath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()
	tokens, err := internal.NewTokenizer(source).Tokenize()
	if err != nil {
		return err
	}
	for _, token := range tokens {
		logrus.Debugf("compiler: token %s at line %d, column %d", token, token.Line, token.Column)
	}
	return nil
}
