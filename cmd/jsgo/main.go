package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/example/jsgo/ast"
	"github.com/example/jsgo/parser"
)

const historyFile = ".jsgo_history"

func main() {
	evalCode := flag.String("e", "", "parse inline JavaScript code")
	dumpAST := flag.Bool("ast", false, "dump the AST as JSON instead of printed source")
	flag.Parse()

	var source string

	if *evalCode != "" {
		source = *evalCode
	} else if flag.NArg() > 0 {
		filename := flag.Arg(0)
		data, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	} else {
		repl(*dumpAST)
		return
	}

	node, err := parser.New(source).Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *dumpAST {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(node); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding AST: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(ast.Print(node))
}

// repl reads expressions line by line, parsing each and echoing its printed
// form (or JSON AST with -ast).
func repl(dumpAST bool) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := filepath.Join(os.TempDir(), historyFile)
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("jsgo parser repl - enter an expression, ctrl-d to exit")
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			fmt.Println()
			return
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		node, err := parser.New(input).Parse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if dumpAST {
			out, err := json.MarshalIndent(node, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding AST: %v\n", err)
				continue
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Println(ast.Print(node))
	}
}
