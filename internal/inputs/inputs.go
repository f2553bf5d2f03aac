package inputs

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
)

const usageLine = "Usage: albumdir <directory>\n\nConvert directory structure to album and song data\n"

// ErrMissingDirectory is returned when no directory argument is given
var ErrMissingDirectory = errors.New("please specify a directory")

type UserInput struct {
	Directory string
}

// ParseArgs parses the arguments following the program name
func ParseArgs(args []string, output io.Writer) (UserInput, error) {
	flags := pflag.NewFlagSet("albumdir", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprint(output, usageLine)
		fmt.Fprintln(output, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return UserInput{}, err
	}

	if flags.NArg() < 1 {
		flags.Usage()
		return UserInput{}, ErrMissingDirectory
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return UserInput{}, fmt.Errorf("unexpected arguments: %v", flags.Args()[1:])
	}

	return UserInput{Directory: flags.Arg(0)}, nil
}

// ParseFlags returns the parsed CLI arguments, exiting on help or bad input
func ParseFlags() UserInput {
	userInput, err := ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return userInput
}
