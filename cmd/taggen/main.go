package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"

	taggeninternal "github.com/sublee/taggen/internal/taggen"
	"github.com/sublee/taggen/internal/taggen/schema"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "taggen_gen.go", "output file name")
	sFlag = flag.String("s", "", "generate from a YAML schema file instead of directives")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	taggeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	outs, err := generate(wd)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// generate runs the schema frontend when -s is given, and the directive
// frontend otherwise. Both produce the same map of output file to code.
func generate(wd string) (map[string][]byte, error) {
	if *sFlag == "" {
		return taggeninternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())
	}

	data, err := os.ReadFile(*sFlag)
	if err != nil {
		return nil, err
	}

	code, err := schema.Generate(*sFlag, data)
	if err != nil || code == nil {
		return nil, err
	}

	out := filepath.Join(filepath.Dir(*sFlag), *oFlag)
	return map[string][]byte{out: code}, nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// rePos matches the file:line:column prefix of an error line.
var rePos = regexp.MustCompile(`(?m)^([^\s:]+:\d+:\d+|-:-): `)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllString(message, red+"$1"+reset+": ")
}
