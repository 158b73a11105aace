package main

import "gridCore/contracts"

// NewCellValuesGetterChain asks second only for the cells first did not find
func NewCellValuesGetterChain(first contracts.CellValuesGetter, second contracts.CellValuesGetter) contracts.CellValuesGetter {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(cellIds []string) []*contracts.CellState {
		result := first(cellIds)

		secondCellIds := make([]string, 0, len(cellIds))
		for index, cell := range result {
			if cell == nil {
				secondCellIds = append(secondCellIds, cellIds[index])
			}
		}

		if len(secondCellIds) != 0 {
			secondResult := second(secondCellIds)

			searchInSecondCellIdsIndex := 0
			for index, cell := range result {
				if cell == nil {
					result[index] = secondResult[searchInSecondCellIdsIndex]
					searchInSecondCellIdsIndex++
				}
			}
		}

		return result
	}
}
