package main

import (
	"fmt"
	"gridCore/contracts"
	"log/slog"
	"slices"
	"strconv"
)

const SheetNamePrefix = "sheet"

type sheetNamer func(sheets []string) (string, error)

type SheetLifecycle struct {
	store  contracts.WorkbookStore
	namer  sheetNamer
	logger *slog.Logger
}

func NewSheetLifecycle(store contracts.WorkbookStore, naming contracts.SheetNaming, logger *slog.Logger) (*SheetLifecycle, error) {
	lifecycle := &SheetLifecycle{store: store, logger: logger}

	switch naming {
	case contracts.CountSheetNaming, "":
		lifecycle.namer = lifecycle.nameByCount
	case contracts.SequenceSheetNaming:
		lifecycle.namer = lifecycle.nameBySequence
	default:
		return nil, fmt.Errorf("`%s`: %w", naming, contracts.UnknownSheetNamingError)
	}

	return lifecycle, nil
}

// EnsureFirstSheet creates and activates the first sheet of an empty workbook.
// The first name is always by count, so it is "sheet1" under any naming.
func (l *SheetLifecycle) EnsureFirstSheet() (string, error) {
	sheets, err := l.store.Sheets()
	if err != nil {
		return "", err
	}

	if len(sheets) > 0 {
		current, err := l.store.CurrentSheet()
		if err != nil || current != "" {
			return current, err
		}

		// current pointer lost, e.g. by an old database
		return sheets[0], l.SwitchSheet(sheets[0])
	}

	name, _ := l.nameByCount(sheets)
	return name, l.createAndSwitch(name)
}

func (l *SheetLifecycle) AddSheet() (string, error) {
	sheets, err := l.store.Sheets()
	if err != nil {
		return "", err
	}

	name, err := l.namer(sheets)
	if err != nil {
		return "", err
	}

	if slices.Contains(sheets, name) {
		l.logger.Warn("sheet name already taken, switching to existing sheet", "sheet", name)
	}

	return name, l.createAndSwitch(name)
}

// SwitchSheet does not check the sheet exists
func (l *SheetLifecycle) SwitchSheet(name string) error {
	return l.store.Dispatch(contracts.SwitchSheet(name))
}

func (l *SheetLifecycle) createAndSwitch(name string) error {
	if err := l.store.Dispatch(contracts.CreateSheet(name)); err != nil {
		return err
	}

	l.logger.Info("sheet created", "sheet", name)
	return l.SwitchSheet(name)
}

// nameByCount may repeat a name after a sheet was deleted
func (l *SheetLifecycle) nameByCount(sheets []string) (string, error) {
	return SheetNamePrefix + strconv.Itoa(len(sheets)+1), nil
}

func (l *SheetLifecycle) nameBySequence(sheets []string) (string, error) {
	for {
		sequence, err := l.store.NextSheetSequence()
		if err != nil {
			return "", err
		}

		name := SheetNamePrefix + strconv.FormatUint(sequence, 10)
		if !slices.Contains(sheets, name) {
			return name, nil
		}
	}
}
