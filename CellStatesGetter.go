package main

import "gridCore/contracts"

// NewCellStatesGetter serves cells already loaded in memory, unknown ids are nil
func NewCellStatesGetter(cells map[string]*contracts.CellState) contracts.CellValuesGetter {
	return func(cellIds []string) []*contracts.CellState {
		values := make([]*contracts.CellState, len(cellIds))

		for index, cellId := range cellIds {
			values[index] = cells[cellId]
		}

		return values
	}
}
