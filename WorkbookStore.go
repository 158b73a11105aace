package main

import (
	"bytes"
	"fmt"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
	"gridCore/contracts"
	"log/slog"
	"math"
	"strings"
	"sync"
)

const DefaultGridRows = 20
const DefaultGridCols = 10

const ReservedSheetPrefix = "__"

var workbookBucketId = []byte("__workbook")

var (
	sheetsKey       = []byte("sheets")
	currentSheetKey = []byte("current")
	activeCellKey   = "active"
	dimensionsKey   = "dims"
)

// storeRequest carries either a command or a raw write that emits no event
type storeRequest struct {
	command contracts.Command
	write   func(tx *bbolt.Tx) error
	reply   chan error
}

// WorkbookStore is an actor over bbolt: one worker applies commands in order,
// each in its own transaction, then notifies listeners before Dispatch returns.
// Listeners run on the worker goroutine and must not Dispatch.
type WorkbookStore struct {
	db                *bbolt.DB
	executor          contracts.ExpressionExecutor
	serializer        contracts.CellSerializer
	codec             contracts.AddressCodec
	dependencyTree    contracts.CellDependencyTree
	defaultDimensions contracts.SheetDimensions
	logger            *slog.Logger

	queue     chan storeRequest
	closed    chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	listenersMu sync.RWMutex
	listeners   []contracts.StoreListener
}

func NewWorkbookStore(
	db *bbolt.DB, executor contracts.ExpressionExecutor, serializer contracts.CellSerializer,
	codec contracts.AddressCodec, defaultDimensions contracts.SheetDimensions, logger *slog.Logger,
) *WorkbookStore {
	return &WorkbookStore{
		db:                db,
		executor:          executor,
		serializer:        serializer,
		codec:             codec,
		dependencyTree:    &CellDependencyTree{},
		defaultDimensions: defaultDimensions,
		logger:            logger,
		queue:             make(chan storeRequest),
		closed:            make(chan struct{}),
		done:              make(chan struct{}),
	}
}

func (s *WorkbookStore) Start() {
	go s.runCommandWorker()
}

func (s *WorkbookStore) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	<-s.done
}

func (s *WorkbookStore) Subscribe(listener contracts.StoreListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *WorkbookStore) Dispatch(command contracts.Command) error {
	return s.enqueue(storeRequest{command: command, reply: make(chan error, 1)})
}

func (s *WorkbookStore) enqueue(request storeRequest) error {
	select {
	case s.queue <- request:
	case <-s.closed:
		return contracts.StoreClosedError
	}

	return <-request.reply
}

func (s *WorkbookStore) runCommandWorker() {
	defer close(s.done)

	for {
		select {
		case request := <-s.queue:
			if request.write != nil {
				request.reply <- s.db.Update(request.write)
				continue
			}

			event, err := s.apply(request.command)
			if err != nil {
				s.logger.Debug("command rejected", "command", request.command.Kind, "sheet", request.command.Sheet, "address", request.command.Address, "error", err)
			} else if event != nil {
				s.notify(*event)
			}
			request.reply <- err

		case <-s.closed:
			return
		}
	}
}

func (s *WorkbookStore) notify(event contracts.StoreEvent) {
	s.listenersMu.RLock()
	listeners := make([]contracts.StoreListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

func (s *WorkbookStore) apply(command contracts.Command) (event *contracts.StoreEvent, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) (err error) {
		var changed []*contracts.CellState

		switch command.Kind {
		case contracts.SetActiveCellCommand:
			err = s.applySetActiveCell(tx, command)
		case contracts.SetCellPropertyCommand:
			changed, err = s.applySetCellProperty(tx, command)
		case contracts.SetCellStyleCommand:
			changed, err = s.applySetCellStyle(tx, command)
		case contracts.ClearDependentRelationCommand:
			err = s.applyClearDependentRelation(tx, command)
		case contracts.ScheduleReevaluationCommand:
			changed, err = s.applyScheduleReevaluation(tx, command)
		case contracts.CreateSheetCommand:
			err = s.applyCreateSheet(tx, command)
		case contracts.DeleteSheetCommand:
			err = s.applyDeleteSheet(tx, command)
		case contracts.SwitchSheetCommand:
			err = s.workbookBucket(tx).Put(currentSheetKey, []byte(command.Sheet))
		default:
			err = fmt.Errorf("%s: %w", command.Kind, contracts.UnknownCommandError)
		}

		if err != nil {
			return err
		}

		event = &contracts.StoreEvent{
			Command:      command,
			CurrentSheet: string(s.workbookBucket(tx).Get(currentSheetKey)),
			ChangedCells: changed,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *WorkbookStore) applySetActiveCell(tx *bbolt.Tx, command contracts.Command) error {
	if _, err := s.sheetBucket(tx, command.Sheet); err != nil {
		return err
	}

	if err := s.growDimensions(tx, command.Sheet, command.Address); err != nil {
		return err
	}

	return s.workbookBucket(tx).Put(s.makeSheetKey(activeCellKey, command.Sheet), []byte(command.Address))
}

func (s *WorkbookStore) applySetCellProperty(tx *bbolt.Tx, command contracts.Command) ([]*contracts.CellState, error) {
	cell, err := s.loadCellForWrite(tx, command.Sheet, command.Address)
	if err != nil {
		return nil, err
	}

	switch command.Property {
	case contracts.ContentProperty:
		cell.Content = command.Value
	case contracts.FormulaProperty:
		cell.Formula = command.Value
		if command.Value != "" {
			dependingOn := s.executor.ExtractDependingOnList(command.Value)
			err = s.dependencyTree.SetDependsOn(tx, []byte(command.Sheet), command.Address, dependingOn)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("property `%s`: %w", command.Property, contracts.UnknownCommandError)
	}

	if err = s.storeCell(tx, command.Sheet, cell); err != nil {
		return nil, err
	}
	return []*contracts.CellState{cell}, nil
}

func (s *WorkbookStore) applySetCellStyle(tx *bbolt.Tx, command contracts.Command) ([]*contracts.CellState, error) {
	cell, err := s.loadCellForWrite(tx, command.Sheet, command.Address)
	if err != nil {
		return nil, err
	}

	cell.Style = cell.Style.Merge(command.Style)

	if err = s.storeCell(tx, command.Sheet, cell); err != nil {
		return nil, err
	}
	return []*contracts.CellState{cell}, nil
}

func (s *WorkbookStore) applyClearDependentRelation(tx *bbolt.Tx, command contracts.Command) error {
	if _, err := s.sheetBucket(tx, command.Sheet); err != nil {
		return err
	}

	return s.dependencyTree.SetDependsOn(tx, []byte(command.Sheet), command.Address, nil)
}

// applyScheduleReevaluation recomputes the cell and its transitive dependents.
// Evaluation failures are stored as cell content, they don't fail the command.
func (s *WorkbookStore) applyScheduleReevaluation(tx *bbolt.Tx, command contracts.Command) ([]*contracts.CellState, error) {
	bucket, err := s.sheetBucket(tx, command.Sheet)
	if err != nil {
		return nil, err
	}

	targets := []string{command.Address}
	seen := map[string]bool{command.Address: true}
	for _, dependant := range s.dependencyTree.GetDependants(tx, []byte(command.Sheet), command.Address) {
		if !seen[dependant] {
			seen[dependant] = true
			targets = append(targets, dependant)
		}
	}

	storedGetter := s.makeValuesGetter(bucket)
	cells := storedGetter(targets)

	loaded := make(map[string]*contracts.CellState, len(cells))
	expressions := contracts.ExpressionsMap{}
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		loaded[cell.Id] = cell
		if s.executor.IsFormula(cell.Formula) {
			expressions[cell.Id] = cell.Formula
		}
	}
	// targets are decoded once, references outside them hit the bucket
	getter := NewCellValuesGetterChain(NewCellStatesGetter(loaded), storedGetter)

	if len(expressions) == 0 {
		return nil, nil
	}

	results, evaluationErr := s.executor.MultiEvaluate(expressions, getter)
	if evaluationErr != nil {
		s.logger.Warn("reevaluation finished with errors", "sheet", command.Sheet, "address", command.Address, "error", evaluationErr)
	}

	changed := make([]*contracts.CellState, 0, len(expressions))
	for _, cell := range cells {
		if cell == nil {
			continue
		}

		result, ok := results[cell.Id]
		if !ok {
			continue
		}

		cell.Content = result
		if err = s.storeCell(tx, command.Sheet, cell); err != nil {
			return nil, err
		}
		changed = append(changed, cell)
	}

	return changed, nil
}

// applyCreateSheet is a no-op for an existing name
func (s *WorkbookStore) applyCreateSheet(tx *bbolt.Tx, command contracts.Command) error {
	if err := s.validateSheetName(command.Sheet); err != nil {
		return err
	}

	if tx.Bucket([]byte(command.Sheet)) != nil {
		return nil
	}

	if _, err := tx.CreateBucket([]byte(command.Sheet)); err != nil {
		return err
	}

	sheets, err := s.readSheets(tx)
	if err != nil {
		return err
	}

	if err = s.writeSheets(tx, append(sheets, command.Sheet)); err != nil {
		return err
	}

	return s.writeDimensions(tx, command.Sheet, s.defaultDimensions)
}

func (s *WorkbookStore) applyDeleteSheet(tx *bbolt.Tx, command contracts.Command) error {
	if _, err := s.sheetBucket(tx, command.Sheet); err != nil {
		return err
	}

	if err := tx.DeleteBucket([]byte(command.Sheet)); err != nil {
		return err
	}

	if err := s.dependencyTree.DropSheet(tx, []byte(command.Sheet)); err != nil {
		return err
	}

	sheets, err := s.readSheets(tx)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		if sheet != command.Sheet {
			remaining = append(remaining, sheet)
		}
	}
	if err = s.writeSheets(tx, remaining); err != nil {
		return err
	}

	workbook := s.workbookBucket(tx)
	_ = workbook.Delete(s.makeSheetKey(activeCellKey, command.Sheet))
	_ = workbook.Delete(s.makeSheetKey(dimensionsKey, command.Sheet))

	if string(workbook.Get(currentSheetKey)) == command.Sheet {
		current := ""
		if len(remaining) > 0 {
			current = remaining[0]
		}
		return workbook.Put(currentSheetKey, []byte(current))
	}

	return nil
}

func (s *WorkbookStore) Sheets() (sheets []string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) (err error) {
		sheets, err = s.readSheets(tx)
		return
	})
	return
}

func (s *WorkbookStore) CurrentSheet() (current string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		if bucket := tx.Bucket(workbookBucketId); bucket != nil {
			current = string(bucket.Get(currentSheetKey))
		}
		return nil
	})
	return
}

// ActiveCell is empty until a cell of the sheet is activated
func (s *WorkbookStore) ActiveCell(sheet string) (address string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		if _, err := s.sheetBucket(tx, sheet); err != nil {
			return err
		}

		address = string(tx.Bucket(workbookBucketId).Get(s.makeSheetKey(activeCellKey, sheet)))
		return nil
	})
	return
}

// GetCell returns a blank cell for addresses never written
func (s *WorkbookStore) GetCell(sheet string, address string) (cell *contracts.CellState, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := s.sheetBucket(tx, sheet)
		if err != nil {
			return err
		}

		cell = s.makeValuesGetter(bucket)([]string{address})[0]
		if cell == nil {
			cell = &contracts.CellState{Id: address}
		}
		cell.DependentCells = s.dependencyTree.GetDirectDependants(tx, []byte(sheet), address)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *WorkbookStore) GetDependents(sheet string, address string) (dependents []string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		if _, err := s.sheetBucket(tx, sheet); err != nil {
			return err
		}

		dependents = s.dependencyTree.GetDirectDependants(tx, []byte(sheet), address)
		return nil
	})
	return
}

func (s *WorkbookStore) Dimensions(sheet string) (dimensions contracts.SheetDimensions, err error) {
	err = s.db.View(func(tx *bbolt.Tx) (err error) {
		if _, err = s.sheetBucket(tx, sheet); err != nil {
			return err
		}

		dimensions, err = s.readDimensions(tx, sheet)
		return
	})
	return
}

// NextSheetSequence goes through the command worker, so it is ordered with the commands
func (s *WorkbookStore) NextSheetSequence() (sequence uint64, err error) {
	err = s.enqueue(storeRequest{
		write: func(tx *bbolt.Tx) (err error) {
			sequence, err = s.workbookBucket(tx).NextSequence()
			return
		},
		reply: make(chan error, 1),
	})
	return
}

// workbookBucket must only be called inside writable transactions
func (s *WorkbookStore) workbookBucket(tx *bbolt.Tx) *bbolt.Bucket {
	bucket := tx.Bucket(workbookBucketId)
	if bucket == nil {
		bucket, _ = tx.CreateBucket(workbookBucketId)
	}
	return bucket
}

func (s *WorkbookStore) sheetBucket(tx *bbolt.Tx, sheet string) (*bbolt.Bucket, error) {
	if sheet == "" || strings.HasPrefix(sheet, ReservedSheetPrefix) {
		return nil, fmt.Errorf("%s: %w", sheet, contracts.SheetNotFoundError)
	}

	bucket := tx.Bucket([]byte(sheet))
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", sheet, contracts.SheetNotFoundError)
	}
	return bucket, nil
}

func (s *WorkbookStore) validateSheetName(sheet string) error {
	if sheet == "" || strings.HasPrefix(sheet, ReservedSheetPrefix) {
		return fmt.Errorf("`%s`: %w", sheet, contracts.ReservedSheetNameError)
	}
	return nil
}

func (s *WorkbookStore) loadCellForWrite(tx *bbolt.Tx, sheet string, address string) (*contracts.CellState, error) {
	bucket, err := s.sheetBucket(tx, sheet)
	if err != nil {
		return nil, err
	}

	cellAddress, err := s.codec.Decode(address)
	if err != nil {
		return nil, err
	}
	// cells are keyed by the canonical text only
	address = cellAddress.String()

	if err = s.growDimensions(tx, sheet, address); err != nil {
		return nil, err
	}

	cell := s.makeValuesGetter(bucket)([]string{address})[0]
	if cell == nil {
		cell = &contracts.CellState{Id: address}
	}
	return cell, nil
}

func (s *WorkbookStore) storeCell(tx *bbolt.Tx, sheet string, cell *contracts.CellState) error {
	data, err := s.serializer.Marshal(cell)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(sheet)).Put([]byte(cell.Id), data)
}

func (s *WorkbookStore) makeValuesGetter(bucket *bbolt.Bucket) contracts.CellValuesGetter {
	return func(cellIds []string) []*contracts.CellState {
		values := make([]*contracts.CellState, len(cellIds))

		for index, cellId := range cellIds {
			data := bucket.Get([]byte(cellId))
			if data == nil {
				continue
			}

			cell, err := s.serializer.Unmarshal(data)
			if err != nil {
				s.logger.Warn("skip unreadable cell", "cell", cellId, "error", err)
				continue
			}
			values[index] = cell
		}

		return values
	}
}

// growDimensions extends the sheet so the address is inside it
func (s *WorkbookStore) growDimensions(tx *bbolt.Tx, sheet string, address string) error {
	cellAddress, err := s.codec.Decode(address)
	if err != nil {
		return err
	}

	dimensions, err := s.readDimensions(tx, sheet)
	if err != nil {
		return err
	}

	// dimensions are a count, the last index can't be the max int
	if cellAddress.Row == math.MaxInt || cellAddress.Col == math.MaxInt {
		return fmt.Errorf("`%s` is out of grid: %w", address, contracts.InvalidAddressError)
	}

	grown := dimensions
	if cellAddress.Row >= grown.Rows {
		grown.Rows = cellAddress.Row + 1
	}
	if cellAddress.Col >= grown.Cols {
		grown.Cols = cellAddress.Col + 1
	}

	if grown == dimensions {
		return nil
	}
	return s.writeDimensions(tx, sheet, grown)
}

func (s *WorkbookStore) readDimensions(tx *bbolt.Tx, sheet string) (contracts.SheetDimensions, error) {
	dimensions := s.defaultDimensions

	bucket := tx.Bucket(workbookBucketId)
	if bucket == nil {
		return dimensions, nil
	}

	data := bucket.Get(s.makeSheetKey(dimensionsKey, sheet))
	if data == nil {
		return dimensions, nil
	}

	err := json.Unmarshal(data, &dimensions)
	return dimensions, err
}

func (s *WorkbookStore) writeDimensions(tx *bbolt.Tx, sheet string, dimensions contracts.SheetDimensions) error {
	data, err := json.Marshal(&dimensions)
	if err != nil {
		return err
	}
	return s.workbookBucket(tx).Put(s.makeSheetKey(dimensionsKey, sheet), data)
}

func (s *WorkbookStore) readSheets(tx *bbolt.Tx) ([]string, error) {
	sheets := make([]string, 0)

	bucket := tx.Bucket(workbookBucketId)
	if bucket == nil {
		return sheets, nil
	}

	data := bucket.Get(sheetsKey)
	if data == nil {
		return sheets, nil
	}

	err := json.Unmarshal(data, &sheets)
	return sheets, err
}

func (s *WorkbookStore) writeSheets(tx *bbolt.Tx, sheets []string) error {
	data, err := json.Marshal(sheets)
	if err != nil {
		return err
	}
	return s.workbookBucket(tx).Put(sheetsKey, data)
}

func (s *WorkbookStore) makeSheetKey(prefix string, sheet string) []byte {
	return bytes.Join([][]byte{[]byte(prefix), []byte(sheet)}, []byte{Delimiter})
}
