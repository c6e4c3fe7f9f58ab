// Command bfppc is the compiler driver: it picks one of this binary's
// built-in demo construct trees (spec.md treats the real parser as an
// external collaborator this CLI doesn't implement), compiles it through
// pkg/core, optionally peephole-optimizes and runs the result. Adapted
// from the teacher's cmd/console (read-compile-run driver shape) and
// root main.go (flag handling), folding in cmd/ccompiler's habit of
// printing every stage's output under a debug flag.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"bfppc/pkg/core"
	"bfppc/pkg/peephole"
	"bfppc/pkg/peripherals"
	"bfppc/pkg/pregen"
	"bfppc/pkg/tape"
	"bfppc/pkg/utils"
)

func main() {
	demoName := flag.String("demo", "basic", "which built-in demo construct tree to compile")
	list := flag.Bool("list", false, "list available demos and exit")
	usePeephole := flag.Bool("peephole", false, "run the post-processing peephole pass over the emitted code")
	run := flag.Bool("run", false, "execute the compiled code on pkg/tape after compiling")
	debug := flag.Bool("debug", false, "print every stage's output, not just the final one")
	inputFile := flag.String("input", "", "file fed to the program's `,` instructions when --run is set")
	hibernateFile := flag.String("hibernate", "", "with --run, write a hibernate archive here after execution halts")
	restoreFile := flag.String("restore", "", "with --run, resume execution from a hibernate archive instead of starting fresh")
	flag.Parse()

	if *list {
		for _, d := range demos() {
			fmt.Println(d.name)
		}
		return
	}

	d, ok := findDemo(*demoName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q; use --list to see available demos\n", *demoName)
		os.Exit(2)
	}

	colorize := term.IsTerminal(int(os.Stderr.Fd()))
	sink := core.SinkFunc(func(m core.Message) {
		fmt.Fprintln(os.Stderr, renderMessage(m, colorize))
	})

	s := core.NewAbstractState(sink)
	pregen.Install(s)

	if *debug {
		fmt.Printf("=== source (%s) ===\n%s\n\n", d.name, d.src)
	}

	code := d.tree.Emit(s)

	if *debug {
		fmt.Printf("=== raw emitted code ===\n%s\n\n", code)
	}

	if *usePeephole {
		code = peephole.Run(code)
		if *debug {
			fmt.Printf("=== after peephole ===\n%s\n\n", code)
		}
	}

	fmt.Println(code)
	fmt.Fprintf(os.Stderr, "%d error(s)\n", s.ErrorCount)

	if s.ErrorCount > 0 {
		os.Exit(1)
	}

	if *run {
		var input []byte
		if *inputFile != "" {
			fullPath, parentDir, err := utils.GetPathInfo(*inputFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if *debug {
				fmt.Printf("=== resolved --input %q -> %s (in %s) ===\n\n", *inputFile, fullPath, parentDir)
			}
			input, err = os.ReadFile(fullPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		io := peripherals.NewStdio(strings.NewReader(string(input)), os.Stdout)

		var interp *tape.Interpreter
		var err error
		if *restoreFile != "" {
			archive, rerr := os.ReadFile(*restoreFile)
			if rerr != nil {
				fmt.Fprintln(os.Stderr, rerr)
				os.Exit(1)
			}
			interp, err = tape.RestoreFromBytes(archive, io)
		} else {
			interp, err = tape.New(code, io)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := interp.Run(10_000_000); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *hibernateFile != "" {
			archive, herr := interp.HibernateToBytes()
			if herr != nil {
				fmt.Fprintln(os.Stderr, herr)
				os.Exit(1)
			}
			if err := os.WriteFile(*hibernateFile, archive, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	}
}

// renderMessage is the textual diagnostic renderer spec.md §1 treats as
// an external collaborator: it turns a core.Message into a line (plus
// an ascii-art excerpt, if the span supports it) optionally colourized
// via golang.org/x/term's terminal detection.
func renderMessage(m core.Message, colorize bool) string {
	var b strings.Builder

	sev := m.Severity.String()
	if colorize {
		color := "33" // yellow for warnings
		if m.Severity == core.SeverityError {
			color = "31" // red for errors
		}
		fmt.Fprintf(&b, "\x1b[%sm%s\x1b[0m: %s (%s)", color, sev, m.Text, m.Kind)
	} else {
		fmt.Fprintf(&b, "%s: %s (%s)", sev, m.Text, m.Kind)
	}

	type asciiArter interface{ ShowAsciiArt() []string }
	if a, ok := m.Span.(asciiArter); ok {
		for _, line := range a.ShowAsciiArt() {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	for _, n := range m.Notes {
		fmt.Fprintf(&b, "\n  note: %s", n)
	}
	if len(m.Suggest) > 0 {
		fmt.Fprintf(&b, "\n  did you mean: %s?", strings.Join(m.Suggest, ", "))
	}
	return b.String()
}
