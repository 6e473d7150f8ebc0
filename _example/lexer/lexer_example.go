package main

import (
	"fmt"

	"github.com/walterdeboer/spdx-expr/lexer"
)

func main() {
	input := `(MIT)AND(LGPL-2.1-or-later WITH(CC0 OR GPL-2))`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Text())
	}
}
