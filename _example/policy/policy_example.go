package main

import (
	"fmt"

	spdxexpr "github.com/walterdeboer/spdx-expr"
)

func main() {
	accept := spdxexpr.AcceptList("MIT", "Apache-2.0", "BSD-3-Clause")

	expressions := []string{
		`GPL-2.0-only OR MIT`,
		`GPL-2.0-only AND MIT`,
		`MIT AND (Apache-2.0 OR AGPL-3.0-only)`,
	}

	for _, raw := range expressions {
		expr := spdxexpr.Parse(raw)
		fmt.Printf("%-50q -> %s (acceptable: %v)\n", raw, spdxexpr.Render(expr), spdxexpr.Evaluate(expr, accept))
	}
}
