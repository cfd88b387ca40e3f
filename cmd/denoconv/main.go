package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	denocore "github.com/nathanwhit/deno-core"
	"github.com/nathanwhit/deno-core/convert"
	"github.com/nathanwhit/deno-core/jsengine"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true).Width(8)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	var (
		expr  = flag.String("e", "", "Evaluate a single expression and exit")
		debug = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		denocore.SetLogger(logger)
	}

	scope := jsengine.NewScope()
	tty := term.IsTerminal(int(os.Stdin.Fd()))

	if *expr != "" {
		if err := evalAndPrint(scope, *expr); err != nil {
			fmt.Fprintln(os.Stderr, render(tty, errStyle, "Error: "+err.Error()))
			os.Exit(1)
		}
		return
	}

	if tty {
		fmt.Println("denoconv: type a JS expression to see its engine and Go views (ctrl-d to exit)")
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		if tty {
			fmt.Print("js> ")
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if err := evalAndPrint(scope, line); err != nil {
			fmt.Println(render(tty, errStyle, "Error: "+err.Error()))
		}
	}
	if err := in.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func evalAndPrint(scope *jsengine.Scope, src string) error {
	val, err := scope.Eval(src)
	if err != nil {
		return err
	}
	for _, ln := range describe(scope, val) {
		fmt.Println(ln)
	}
	return nil
}

// describe shows the engine value alongside every native view the adapters
// can produce for it.
func describe(scope denocore.Scope, val denocore.Value) []string {
	out := []string{line("engine", fmt.Sprintf("%v", val))}

	var smi convert.Smi[int32]
	if err := smi.FromValue(scope, val); err == nil {
		out = append(out, line("smi", fmt.Sprintf("int32(%d)", smi.Val)))
	}

	var num convert.Number[float64]
	if err := num.FromValue(scope, val); err == nil {
		out = append(out, line("number", fmt.Sprintf("float64(%g)", num.Val)))
	}

	var b convert.Bool
	_ = b.FromValue(scope, val) // infallible
	out = append(out, line("bool", fmt.Sprintf("%v", bool(b))))

	if seq, err := convert.FromSeq[convert.Number[float64]](scope, val); err == nil {
		vals := make([]string, len(seq))
		for i, n := range seq {
			vals[i] = fmt.Sprintf("%g", n.Val)
		}
		out = append(out, line("seq", "[]float64{"+strings.Join(vals, ", ")+"}"))
	}

	return out
}

func line(label, value string) string {
	return labelStyle.Render(label) + value
}

func render(tty bool, style lipgloss.Style, s string) string {
	if !tty {
		return s
	}
	return style.Render(s)
}
