package main

import (
	"flag"
	"log"
	"os"

	"github.com/formlang/formlang"
	"github.com/formlang/formlang/internal/sexpr"
)

const defaultWritePermission = 0644 // -rw-r--r--

func main() {
	var (
		sourcePath = flag.String("source", "", "Path to the unit's source file")
		outputPath = flag.String("output", "/dev/stdout", "Path to the generated C file")
		unitName   = flag.String("unit-name", "unit", "C entry function name for the emitted unit")
		gcMarking  = flag.Bool("gc-marking", false, "Emit GC frame marking instructions")
	)
	flag.Parse()

	if *sourcePath == "" {
		log.Fatal("Source not informed")
	}

	source, err := os.ReadFile(*sourcePath)
	if err != nil {
		log.Fatalf("Can't read source file: %s", err.Error())
	}

	ctx := formlang.NewContext()
	ctx.Config.SetString("emit.unit_name", *unitName)
	ctx.Config.SetBool("transform.gc_marking", *gcMarking)
	ctx.Loader = formlang.NewRelativeSourceLoader()
	ctx.Sources = formlang.NewSourceTable()
	ctx.ParseUnit = func(ctx *formlang.Context, content []byte, file formlang.FileID) *formlang.Term {
		t, err := sexpr.Read(ctx, file, string(content))
		if err != nil {
			formlang.Halt(formlang.MnemonicCompilationHalted, "parse: %s", err.Error())
		}
		return t
	}

	file := ctx.Sources.AddFile(*sourcePath, source)
	ctx.CurrentPath = *sourcePath

	unit, err := sexpr.Read(ctx, file, string(source))
	if err != nil {
		log.Fatalf("Can't parse source: %s", err.Error())
	}

	topLevel := formlang.PushLayer(formlang.KindPlain, nil)
	output, err := formlang.Compile(ctx, unit, topLevel)
	if err != nil {
		log.Fatalf("Can't compile unit: %s", err.Error())
	}

	if err := os.WriteFile(*outputPath, []byte(output), defaultWritePermission); err != nil {
		log.Fatalf("Can't write output: %s", err.Error())
	}
}
