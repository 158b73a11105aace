package main

import (
	"errors"
	"fmt"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"gridCore/contracts"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type ExpressionExecutor struct {
	canonicalizer   contracts.Canonicalizer
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

const FormulaPrefix = "="

const FormulaExecutionInProcess = '\n'

var ExpressionError = errors.New("expression error")

var CircularReferenceError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")

func NewExpressionExecutor(canonicalizer contracts.Canonicalizer) *ExpressionExecutor {
	return &ExpressionExecutor{
		canonicalizer: canonicalizer,
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
			maxFunction,
			minFunction,
			sumFunction,
			avgFunction,
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

// MultiEvaluate evaluates every expression sharing one set of resolved vars,
// so a cell referenced by several formulas is computed once.
// All results are returned, error text included; the error is the first one met.
func (e *ExpressionExecutor) MultiEvaluate(expressions contracts.ExpressionsMap, sheet contracts.CellValuesGetter) (contracts.ResultsMap, error) {
	vars := make(map[string]any)
	results := make(contracts.ResultsMap, len(expressions))
	var firstErr error

	cellIds := make([]string, 0, len(expressions))
	for cellId := range expressions {
		cellIds = append(cellIds, cellId)
	}
	sort.Strings(cellIds)

	for _, cellId := range cellIds {
		expression := expressions[cellId]
		if !e.IsFormula(expression) {
			results[cellId] = expression
			continue
		}

		if value, ok := vars[cellId]; ok && value != FormulaExecutionInProcess {
			results[cellId] = e.outputToString(value, nil)
			continue
		}

		vars[cellId] = FormulaExecutionInProcess
		value, err := e.doEvaluate(expression, sheet, vars)
		if err != nil {
			delete(vars, cellId)
			if firstErr == nil {
				firstErr = fmt.Errorf("cell %s: %w", cellId, err)
			}
		} else {
			vars[cellId] = value
		}
		results[cellId] = e.outputToString(value, err)
	}

	return results, firstErr
}

func (e *ExpressionExecutor) Evaluate(formula string, sheet contracts.CellValuesGetter) (string, error) {
	// not formula
	if !e.IsFormula(formula) {
		return formula, nil
	}

	vars := make(map[string]any)
	output, err := e.doEvaluate(formula, sheet, vars)
	if err != nil {
		err = fmt.Errorf("%s: %w", formula, err)
	}
	return e.outputToString(output, err), err
}

func (e *ExpressionExecutor) ExtractDependingOnList(formula string) []string {
	dependingOn := make([]string, 0)
	// not formula
	if !e.IsFormula(formula) {
		return dependingOn
	}

	refs, err := e.findRefs(e.canonicalize(formula))
	if err != nil {
		return dependingOn
	}

	for _, ref := range refs {
		dependingOn = append(dependingOn, ref.address)
	}

	return dependingOn
}

func (e *ExpressionExecutor) IsFormula(value string) bool {
	return strings.HasPrefix(value, FormulaPrefix)
}

func (e *ExpressionExecutor) canonicalize(formula string) string {
	return e.canonicalizer.Canonicalize(strings.TrimPrefix(formula, FormulaPrefix))
}

func (e *ExpressionExecutor) findRefs(source string) ([]cellRef, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ExpressionError, err.Error())
	}

	visitor := &FindCellRefsVisitor{canonicalizer: e.canonicalizer}
	ast.Walk(&tree.Node, visitor)
	return visitor.refs, nil
}

func (e *ExpressionExecutor) doEvaluate(formula string, sheet contracts.CellValuesGetter, vars map[string]any) (out any, err error) {
	source := e.canonicalize(formula)

	program, err := expr.Compile(source, e.compilerOptions...)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ExpressionError, err.Error())
	}

	refs, err := e.findRefs(source)
	if err != nil {
		return "", err
	}

	env, err := e.lookupAndFillVars(refs, sheet, vars)
	if err != nil {
		return "", err
	}

	v := e.vmPool.Get().(*vm.VM)
	out, err = v.Run(program, env)
	e.vmPool.Put(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ExpressionError, err.Error())
	}
	return
}

// lookupAndFillVars resolves every referenced cell, evaluating referenced formulas first.
// A reference back to a formula still in process is a cycle.
func (e *ExpressionExecutor) lookupAndFillVars(refs []cellRef, sheet contracts.CellValuesGetter, vars map[string]any) (map[string]any, error) {
	env := make(map[string]any, len(refs))
	toFetch := make([]string, 0, len(refs))

	for _, ref := range refs {
		value, ok := vars[ref.address]
		if !ok {
			toFetch = append(toFetch, ref.address)
		} else if value == FormulaExecutionInProcess {
			return nil, fmt.Errorf("%s: %w", ref.address, CircularReferenceError)
		}
	}

	if len(toFetch) > 0 {
		var cells []*contracts.CellState
		if sheet != nil {
			cells = sheet(toFetch)
		}

		for index, cellId := range toFetch {
			var cell *contracts.CellState
			if index < len(cells) {
				cell = cells[index]
			}

			if cell != nil && e.IsFormula(cell.Formula) {
				// prevent recursive call - mark this variable as in process
				vars[cellId] = FormulaExecutionInProcess
				value, err := e.doEvaluate(cell.Formula, sheet, vars)
				if err != nil {
					delete(vars, cellId)
					return nil, fmt.Errorf("%s: %w", cellId, err)
				}
				vars[cellId] = value
			} else if cell != nil {
				vars[cellId] = parseValue(cell.Content)
			} else {
				vars[cellId] = parseValue("")
			}
		}
	}

	for _, ref := range refs {
		env[ref.name] = vars[ref.address]
	}

	return env, nil
}

func (e *ExpressionExecutor) outputToString(output any, err error) string {
	if err != nil {
		return "ERROR: " + err.Error()
	}

	return e.toString(output)
}

func (e *ExpressionExecutor) toString(input any) string {
	switch value := input.(type) {
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case string:
		return value
	default:
		return ""
	}
}

// parseValue reads plain content as int64, float64 or string. Empty content counts as zero.
func parseValue(content string) any {
	if content == "" {
		return int64(0)
	}

	if intValue, err := strconv.ParseInt(content, 10, 64); err == nil {
		return intValue
	} else if floatValue, err := strconv.ParseFloat(content, 64); err == nil {
		return floatValue
	}

	return content
}
