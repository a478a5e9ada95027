// Package domain defines the lookup vocabulary shared by the employee layers.
package domain

import "fmt"

// Strategy selects how an equality lookup is expressed against storage.
// All strategies must return the same record for the same stored data.
type Strategy string

const (
	// StrategySpecification composes the predicate with a criteria builder.
	StrategySpecification Strategy = "specifications"
	// StrategyQuery issues a parameterized query-language condition.
	StrategyQuery Strategy = "hql"
	// StrategyNative issues literal SQL.
	StrategyNative Strategy = "native"
)

// Strategies lists every supported strategy in route order.
var Strategies = []Strategy{StrategySpecification, StrategyQuery, StrategyNative}

// ParseStrategy maps a route label to a Strategy.
func ParseStrategy(label string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown lookup strategy: %s", label)
}

// Field names the column an equality lookup is keyed on.
type Field string

const (
	FieldEmail     Field = "email"
	FieldFirstName Field = "name"
)
