package main

import (
	"fmt"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm/runtime"
)

var NoArgumentsError = fmt.Errorf("%w: %s", ExpressionError, "function expects at least one argument")

var calculateMax = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	maxValue := args[0]
	for _, arg := range args[1:] {
		if runtime.Less(maxValue, arg) {
			maxValue = arg
		}
	}
	return maxValue, nil
}

var calculateMin = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	minValue := args[0]
	for _, arg := range args[1:] {
		if runtime.More(minValue, arg) {
			minValue = arg
		}
	}
	return minValue, nil
}

var calculateSum = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	sum := args[0]
	for i := 1; i < len(args); i++ {
		sum = runtime.Add(sum, args[i])
	}
	return sum, nil
}

var calculateAvg = func(args ...any) (any, error) {
	sum, err := calculateSum(args...)
	if err != nil {
		return nil, err
	}
	return runtime.Divide(sum, len(args)), nil
}

var maxFunction = expr.Function("max", calculateMax)
var minFunction = expr.Function("min", calculateMin)
var sumFunction = expr.Function("sum", calculateSum)
var avgFunction = expr.Function("avg", calculateAvg)
