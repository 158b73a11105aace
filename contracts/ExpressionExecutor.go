package contracts

// CellValuesGetter returns the stored cell states for the given addresses, nil for missing cells
type CellValuesGetter func(cellIds []string) []*CellState

// ExpressionsMap maps cell address to its formula. Results are written back into ResultsMap.
type ExpressionsMap map[string]string

type ResultsMap map[string]string

type ExpressionExecutor interface {
	Evaluate(formula string, sheet CellValuesGetter) (string, error)
	MultiEvaluate(expressions ExpressionsMap, sheet CellValuesGetter) (ResultsMap, error)
	ExtractDependingOnList(formula string) (dependingOnCellIds []string)
	IsFormula(value string) bool
}

type Canonicalizer interface {
	Canonicalize(formula string) string
	RefToAddress(ref string) (string, bool)
	AddressToRef(address string) (string, error)
}
