/*

Package yopt splits a command line into options and positional arguments.
It does nothing else: there are no option definitions, no validation, no help
text. The program asks for what it wants after parsing, and the typed
accessors decide if a value makes sense.

A first example shows how to get a verbose flag and a port number:

    package main

    import (
    	"fmt"
    	"os"

    	"github.com/jpvetterli/yopt"
    )

    func main() {
    	o := yopt.ParseArgs(os.Args)
    	verbose, err := o.Bool("verbose", false)
    	if err != nil {
    		fmt.Fprintln(os.Stderr, err)
    		os.Exit(1)
    	}
    	port := o.IntOr("port", 8080)
    	for _, file := range o.Args() {
    		// ...
    	}
    }

The Syntax

The input is a sequence of tokens. A token starting with a dash is an option,
anything else is a positional argument:

  -key  --key              (flag: key present, empty value)
  -key=value --key=value   (key with a value)
  --key="quoted value"     (key with a value containing white space)
  token "quoted token"     (positional arguments)

One or two dashes are accepted, they mean the same thing. The quotes around a
quoted value or argument are removed. White space is a space, a tab, a carriage
return or a line feed.

When a key appears more than once with a value, the last value wins. A flag
does not replace a value given earlier for the same key.

Parsing never fails. Stray dashes, unterminated quotes and other oddities are
resolved in some way, and errors are reported only by the accessors: Required
when an option is missing, Bool when a value is not a boolean literal, Arg when
an index is out of range. These errors wrap ErrMissingOption, ErrBoolLiteral
and ErrIndexOutOfRange.

Command Lines And Argument Vectors

Parse takes a complete command line, where white space separates tokens:

  --name=John Doe          (option name with value "John", argument "Doe")
  --name="John Doe"        (option name with value "John Doe")

ParseArgs takes an argument vector like os.Args. The shell has already split
the command line into elements, so white space inside an element does not
separate tokens, and the element --name=John Doe gives the option name the value
"John Doe". The first element is the program name and is skipped.

Character Width

The tokenizer works on bytes (UTF-8), uint16 (UTF-16, as found in Windows
command lines) and runes. New and NewArgs accept any of these. Keys are always
looked up with a Go string, which is converted to the width of the input, and
Text, ArgText, Int and Bool convert values to Go strings. UTF-16 text is
converted by a Converter, UTF16Converter unless configured otherwise.

Values returned as slices are views into the input, not copies. They remain
valid as long as the caller does not modify the input.

Configuration

A Config changes the dash, the quote and the equal sign, and the maximum number
of characters scanned per command line or argument vector element (4096 by
default). Input beyond the maximum is ignored without notice, except on the
Debug logger.

*/
package yopt
