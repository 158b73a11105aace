package contracts

import (
	"errors"
)

type CommandKind string

const (
	SetActiveCellCommand          CommandKind = "SetActiveCell"
	SetCellPropertyCommand        CommandKind = "SetCellProperty"
	SetCellStyleCommand           CommandKind = "SetCellStyle"
	ClearDependentRelationCommand CommandKind = "ClearDependentRelation"
	ScheduleReevaluationCommand   CommandKind = "ScheduleReevaluation"
	CreateSheetCommand            CommandKind = "CreateSheet"
	DeleteSheetCommand            CommandKind = "DeleteSheet"
	SwitchSheetCommand            CommandKind = "SwitchSheet"
)

type CellProperty string

const (
	ContentProperty CellProperty = "content"
	FormulaProperty CellProperty = "formula"
)

// Command is a single named action against the workbook store.
// Only the fields relevant to Kind are read.
type Command struct {
	Kind     CommandKind
	Sheet    string
	Address  string
	Property CellProperty
	Value    string
	Style    CellStyle
}

var UnknownCommandError = errors.New("unknown command")

func SetActiveCell(address string, sheet string) Command {
	return Command{Kind: SetActiveCellCommand, Address: address, Sheet: sheet}
}

func SetCellProperty(address string, sheet string, property CellProperty, value string) Command {
	return Command{Kind: SetCellPropertyCommand, Address: address, Sheet: sheet, Property: property, Value: value}
}

func SetCellStyle(address string, sheet string, style CellStyle) Command {
	return Command{Kind: SetCellStyleCommand, Address: address, Sheet: sheet, Style: style}
}

func ClearDependentRelation(address string, sheet string) Command {
	return Command{Kind: ClearDependentRelationCommand, Address: address, Sheet: sheet}
}

func ScheduleReevaluation(address string, sheet string) Command {
	return Command{Kind: ScheduleReevaluationCommand, Address: address, Sheet: sheet}
}

func CreateSheet(name string) Command {
	return Command{Kind: CreateSheetCommand, Sheet: name}
}

func DeleteSheet(name string) Command {
	return Command{Kind: DeleteSheetCommand, Sheet: name}
}

func SwitchSheet(name string) Command {
	return Command{Kind: SwitchSheetCommand, Sheet: name}
}
