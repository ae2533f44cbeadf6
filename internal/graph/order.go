package graph

import (
	"slices"
	"strings"
)

// OrderSeparator joins packages in ComputeOrder output.
const OrderSeparator = ", "

// Order returns declared packages in install order: every dependency precedes
// its dependents. Packages that take part in no edge follow in declaration
// order.
func Order(decls []Declaration) ([]string, error) {
	g := BuildGraph(decls)
	order, err := Linearize(g)
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)

	seen := g.Vertices()
	for _, d := range decls {
		if _, ok := seen[d.Package]; ok {
			continue
		}
		seen[d.Package] = struct{}{}
		order = append(order, d.Package)
	}
	return order, nil
}

// ComputeOrder parses raw "package: dependency" lines and returns the install
// order joined with OrderSeparator.
func ComputeOrder(lines []string) (string, error) {
	decls, err := ParseDeclarations(lines)
	if err != nil {
		return "", err
	}
	order, err := Order(decls)
	if err != nil {
		return "", err
	}
	return strings.Join(order, OrderSeparator), nil
}
