package main

import (
	"fmt"
	"log"

	"github.com/walterdeboer/spdx-expr/ast"
	"github.com/walterdeboer/spdx-expr/parser"
)

func main() {
	input := `(Apache OR MIT WITH (CPE) AND GPL WITH ((CC0 OR GPL-2)))`

	expr := parser.Parse(input)
	if !expr.Valid() {
		log.Fatalf("parser.Parse: %q is not a valid license expression", input)
	}

	ast.Print(expr)

	fmt.Println(ast.Render(expr))
}
