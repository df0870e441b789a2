// Package main is the command-line entry point for mimir. It supports two
// modes of operation:
//
//  1. REPL mode (default, no arguments): an interactive session.
//  2. File mode (mimir <path>): execute a single source file and exit.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"mimir/interpreter"
	"mimir/repl"
)

const (
	version = "v1.0.0"
	prompt  = "mimir >>> "
)

const banner = `
 _ __ ___ (_)_ __ ___ (_)_ __
| '_ ' _ \| | '_ ' _ \| | '__|
| | | | | | | | | | | | | |
|_| |_| |_|_|_| |_| |_|_|_|
`

const line = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			runFile(arg)
		}
		return
	}

	r := repl.New(banner, version, line, prompt)
	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("mimir - un intérprete de un lenguaje con palabras clave en español")
	cyanColor.Println("")
	cyanColor.Println("USO:")
	yellowColor.Println("  mimir                    Inicia el modo interactivo (REPL)")
	yellowColor.Println("  mimir <archivo>          Ejecuta un archivo de código fuente")
	yellowColor.Println("  mimir --help             Muestra este mensaje")
	yellowColor.Println("  mimir --version          Muestra la versión")
}

func showVersion() {
	cyanColor.Printf("mimir %s\n", version)
}

// runFile reads source from path and evaluates it as a single program,
// printing either the final result or the diagnostics (every parser
// diagnostic, one per line, or the runtime Error message).
// Unlike the REPL, a failure here exits the process with a non-zero
// status — there is no prompt to return to.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "No se pudo leer el archivo '%s': %v\n", path, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[ERROR EN TIEMPO DE EJECUCIÓN] %v\n", recovered)
			os.Exit(1)
		}
	}()

	result, isError := interpreter.NewSession().EvalChecked(string(source))
	if isError {
		redColor.Fprintf(os.Stderr, "%s\n", result)
		os.Exit(1)
	}
	if result != "" {
		fmt.Println(result)
	}
}
