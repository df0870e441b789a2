// Package repl implements the interactive Read-Eval-Print Loop for mimir.
// Users type lines of source, the Repl lexes/parses/evaluates each one
// immediately and prints the result, and bindings made by one line stay
// visible to the next because the whole session shares one
// interpreter.Session. Colors distinguish banner, prompt output, and
// errors; the prompt itself is readline-backed for history and line
// editing.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"mimir/interpreter"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// exitLine is the input that ends the session without going through the
// salir built-in, for terminals where readline's EOF handling is awkward
// (e.g. ".exit" rather than "salir();").
const exitLine = ".exit"

// Repl holds the cosmetic configuration of one interactive session: the
// banner shown at startup and the prompt readline displays on every line.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version string, separator
// line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBanner writes the startup banner, version line, and usage hints to
// writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Versión: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Escribe una expresión y presiona enter.")
	cyanColor.Fprintln(writer, "Escribe '.exit' o llama a salir() para terminar.")
	cyanColor.Fprintln(writer, "Usa las flechas arriba/abajo para el historial.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: it prints the banner, opens a readline
// prompt, and evaluates every non-empty line against one shared
// interpreter.Session until the user exits via ".exit" or EOF (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "No se pudo iniciar la línea de comandos: %v\n", err)
		return
	}
	defer rl.Close()

	session := interpreter.NewSession()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("¡Hasta luego!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitLine {
			writer.Write([]byte("¡Hasta luego!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, session, line)
	}
}

// evalLine evaluates one line under session, recovering from any panic so
// a single bad line cannot bring down the whole interactive session, and
// prints the result in yellow or the diagnostic in red.
func (r *Repl) evalLine(writer io.Writer, session *interpreter.Session, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[ERROR EN TIEMPO DE EJECUCIÓN] %v\n", recovered)
		}
	}()

	result, isError := session.EvalChecked(line)
	if result == "" {
		return
	}
	if isError {
		redColor.Fprintf(writer, "%s\n", result)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result)
}
