package main

import (
	"gridCore/contracts"
	"log/slog"
)

// EditCascade turns a plain content edit into store commands:
// content, severed formula edges, cleared formula, then one reevaluation per direct dependent.
// Deeper propagation belongs to the evaluator behind ScheduleReevaluation.
type EditCascade struct {
	store  contracts.WorkbookStore
	codec  contracts.AddressCodec
	logger *slog.Logger
}

func NewEditCascade(store contracts.WorkbookStore, codec contracts.AddressCodec, logger *slog.Logger) *EditCascade {
	return &EditCascade{store: store, codec: codec, logger: logger}
}

func (e *EditCascade) ApplyEdit(sheet string, address string, content string) error {
	cellAddress, err := e.codec.Decode(address)
	if err != nil {
		e.logger.Error("edit aborted", "sheet", sheet, "address", address, "error", err)
		return err
	}
	address = cellAddress.String()

	// captured before any write, the edit severs the cell's own edges
	dependents, err := e.store.GetDependents(sheet, address)
	if err != nil {
		return err
	}

	commands := []contracts.Command{
		contracts.SetCellProperty(address, sheet, contracts.ContentProperty, content),
		contracts.ClearDependentRelation(address, sheet),
		contracts.SetCellProperty(address, sheet, contracts.FormulaProperty, ""),
	}
	for _, dependent := range dependents {
		commands = append(commands, contracts.ScheduleReevaluation(dependent, sheet))
	}

	for _, command := range commands {
		if err = e.store.Dispatch(command); err != nil {
			e.logger.Warn("edit cascade interrupted", "sheet", sheet, "address", address, "command", command.Kind, "error", err)
			return err
		}
	}

	e.logger.Debug("edit applied", "sheet", sheet, "address", address, "reevaluated", len(dependents))
	return nil
}
