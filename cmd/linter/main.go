// Command linter runs the repository analyzer.
//
//	go run ./cmd/linter ./...
package main

import (
	"github.com/MikhailRaia/top4top-converter/cmd/linter/analyzer"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
