package contracts

import "errors"

// WorkbookStore is the single source of truth for sheets and cells.
// Writes go through Dispatch, which returns once the command is committed.
type WorkbookStore interface {
	Dispatch(command Command) error

	Sheets() ([]string, error)
	CurrentSheet() (string, error)
	ActiveCell(sheet string) (string, error)
	GetCell(sheet string, address string) (*CellState, error)
	GetDependents(sheet string, address string) ([]string, error)
	Dimensions(sheet string) (SheetDimensions, error)
	NextSheetSequence() (uint64, error)

	Subscribe(listener StoreListener)
}

type SheetDimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// StoreEvent is emitted after a command commits
type StoreEvent struct {
	Command      Command
	CurrentSheet string
	ChangedCells []*CellState
}

type StoreListener func(event StoreEvent)

var SheetNotFoundError = errors.New("sheet not found")

var ReservedSheetNameError = errors.New("sheet name is reserved")

var StoreClosedError = errors.New("workbook store is closed")
