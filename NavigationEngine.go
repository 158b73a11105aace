package main

import (
	"errors"
	"fmt"
	"gridCore/contracts"
	"log/slog"
	"math"
	"strings"
)

type NavigationEngine struct {
	store     contracts.WorkbookStore
	codec     contracts.AddressCodec
	scheduler contracts.Scheduler
	focuser   contracts.Focuser
	logger    *slog.Logger
}

func NewNavigationEngine(
	store contracts.WorkbookStore, codec contracts.AddressCodec,
	scheduler contracts.Scheduler, focuser contracts.Focuser, logger *slog.Logger,
) *NavigationEngine {
	return &NavigationEngine{
		store:     store,
		codec:     codec,
		scheduler: scheduler,
		focuser:   focuser,
		logger:    logger,
	}
}

// ParseDirection accepts arrow key names and short direction names, case-insensitive
func ParseDirection(input string) (contracts.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "arrowup", "up":
		return contracts.DirectionUp, true
	case "arrowdown", "down":
		return contracts.DirectionDown, true
	case "arrowleft", "left":
		return contracts.DirectionLeft, true
	case "arrowright", "right":
		return contracts.DirectionRight, true
	}
	return "", false
}

// MoveFocus activates the neighbour cell and defers the focus transfer to after render.
// Unknown directions return current untouched.
func (n *NavigationEngine) MoveFocus(sheet string, current string, direction contracts.Direction) (string, error) {
	address, err := n.codec.Decode(current)
	if err != nil {
		n.logger.Error("navigation aborted", "sheet", sheet, "address", current, "error", err)
		return "", err
	}

	switch direction {
	case contracts.DirectionUp:
		address.Row = max(address.Row-1, 0)
	case contracts.DirectionDown:
		if address.Row == math.MaxInt {
			return "", fmt.Errorf("`%s` has no row below: %w", current, contracts.InvalidAddressError)
		}
		address.Row++
	case contracts.DirectionLeft:
		address.Col = max(address.Col-1, 0)
	case contracts.DirectionRight:
		if address.Col == math.MaxInt {
			return "", fmt.Errorf("`%s` has no column right: %w", current, contracts.InvalidAddressError)
		}
		address.Col++
	default:
		return current, nil
	}

	target := address.String()
	if err = n.store.Dispatch(contracts.SetActiveCell(target, sheet)); err != nil {
		return "", err
	}

	n.scheduler.Defer(func() {
		n.transferFocus(sheet)
	})

	return target, nil
}

// FocusCell handles focus acquired directly on a cell, e.g. by a click
func (n *NavigationEngine) FocusCell(sheet string, address string) error {
	cellAddress, err := n.codec.Decode(address)
	if err != nil {
		n.logger.Error("focus aborted", "sheet", sheet, "address", address, "error", err)
		return err
	}

	return n.store.Dispatch(contracts.SetActiveCell(cellAddress.String(), sheet))
}

// transferFocus reads the active cell at run time, so a stale request focuses the newest target
func (n *NavigationEngine) transferFocus(sheet string) {
	current, err := n.store.CurrentSheet()
	if err != nil {
		n.logger.Warn("focus transfer skipped", "sheet", sheet, "error", err)
		return
	}
	if current != sheet {
		n.logger.Debug("focus transfer skipped, sheet switched", "sheet", sheet, "current", current)
		return
	}

	active, err := n.store.ActiveCell(sheet)
	if err != nil || active == "" {
		n.logger.Warn("focus transfer skipped", "sheet", sheet, "error", err)
		return
	}

	elementId := n.codec.ElementId(sheet, active)
	if err = n.focuser.Focus(elementId); err != nil {
		if errors.Is(err, contracts.FocusTargetMissingError) {
			n.logger.Warn("cell element not found, focus unchanged", "element", elementId)
		} else {
			n.logger.Warn("focus transfer failed", "element", elementId, "error", err)
		}
	}
}
