// Package builtins registers the native functions mimir programs can call
// without a user definition: longitud, salir, entero_a_cadena, and
// cadena_a_entero. Each takes the call-site line number instead of an
// io.Writer, since none of these built-ins print anything — a failure is
// just another Error value flowing back through the call.
package builtins

import (
	"fmt"
	"os"
	"strconv"

	"mimir/object"
)

// table is the name -> implementation registry. Lookup is the only way
// the evaluator reaches into it, keeping the registry itself private to
// this package.
var table = map[string]*object.Builtin{
	"longitud":        {Fn: longitud},
	"salir":           {Fn: salir},
	"entero_a_cadena": {Fn: enteroACadena},
	"cadena_a_entero": {Fn: cadenaAEntero},
}

// Lookup returns the builtin registered under name, if any.
func Lookup(name string) (*object.Builtin, bool) {
	b, ok := table[name]
	return b, ok
}

func wrongArgCount(name string, line, got, want int) *object.Error {
	return &object.Error{Message: fmt.Sprintf(
		"Número incorrecto de argumentos para %s, se recibieron %d, se esperaba %d, cerca de la línea %d",
		name, got, want, line,
	)}
}

func unsupportedArg(name string, line int, got object.Type) *object.Error {
	return &object.Error{Message: fmt.Sprintf(
		"Argumento para %s sin soporte, se recibió %s cerca de la línea %d", name, got, line,
	)}
}

// longitud returns the character count of a String argument.
func longitud(line int, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("longitud", line, len(args), 1)
	}
	str, ok := args[0].(*object.String)
	if !ok {
		return unsupportedArg("longitud", line, args[0].Type())
	}
	return &object.Integer{Value: int64(len([]rune(str.Value)))}
}

// salir terminates the process with success status. It is the only
// built-in that exits the interpreter rather than returning a value.
func salir(line int, args ...object.Object) object.Object {
	os.Exit(0)
	return nil
}

// enteroACadena converts an Integer to its decimal String form.
func enteroACadena(line int, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("entero_a_cadena", line, len(args), 1)
	}
	i, ok := args[0].(*object.Integer)
	if !ok {
		return unsupportedArg("entero_a_cadena", line, args[0].Type())
	}
	return &object.String{Value: strconv.FormatInt(i.Value, 10)}
}

// cadenaAEntero parses a decimal String into an Integer.
func cadenaAEntero(line int, args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("cadena_a_entero", line, len(args), 1)
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return unsupportedArg("cadena_a_entero", line, args[0].Type())
	}
	value, err := strconv.ParseInt(s.Value, 10, 64)
	if err != nil {
		return &object.Error{Message: fmt.Sprintf(
			"Argumento para cadena_a_entero sin soporte, se recibió %s cerca de la línea %d", s.Value, line,
		)}
	}
	return &object.Integer{Value: value}
}
