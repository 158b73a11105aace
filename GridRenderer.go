package main

import (
	"gridCore/contracts"
	"log/slog"
)

// Viewport bounds: a sheet grown by a far activation renders only the window holding the active cell
const (
	ViewportRows = 100
	ViewportCols = 50
)

// GridRenderer keeps the element registry in line with the current sheet:
// one element per cell of the viewport, ids `{sheet}-{row}-{col}`.
type GridRenderer struct {
	store    contracts.WorkbookStore
	codec    contracts.AddressCodec
	registry *ElementRegistry
	logger   *slog.Logger
}

func NewGridRenderer(store contracts.WorkbookStore, codec contracts.AddressCodec, registry *ElementRegistry, logger *slog.Logger) *GridRenderer {
	return &GridRenderer{store: store, codec: codec, registry: registry, logger: logger}
}

// Attach renders once and then after every committed command
func (r *GridRenderer) Attach() {
	r.store.Subscribe(func(event contracts.StoreEvent) {
		r.Render(event.CurrentSheet)
	})

	current, err := r.store.CurrentSheet()
	if err != nil {
		r.logger.Warn("initial render skipped", "error", err)
		return
	}
	r.Render(current)
}

func (r *GridRenderer) Render(sheet string) {
	if sheet == "" {
		r.registry.Replace(nil)
		return
	}

	dimensions, err := r.store.Dimensions(sheet)
	if err != nil {
		r.logger.Warn("render skipped", "sheet", sheet, "error", err)
		r.registry.Replace(nil)
		return
	}

	var active contracts.CellAddress
	if activeCell, _ := r.store.ActiveCell(sheet); activeCell != "" {
		if active, err = r.codec.Decode(activeCell); err != nil {
			r.logger.Warn("active cell ignored by render", "sheet", sheet, "address", activeCell, "error", err)
		}
	}

	fromRow, toRow := viewportRange(active.Row, dimensions.Rows, ViewportRows)
	fromCol, toCol := viewportRange(active.Col, dimensions.Cols, ViewportCols)

	elementIds := make([]string, 0, (toRow-fromRow)*(toCol-fromCol))
	for row := fromRow; row < toRow; row++ {
		for col := fromCol; col < toCol; col++ {
			address, _ := r.codec.Encode(row, col)
			elementIds = append(elementIds, r.codec.ElementId(sheet, address))
		}
	}

	r.registry.Replace(elementIds)
}

// viewportRange is the [from, to) window of at most limit indexes that ends no earlier than active
func viewportRange(active int, size int, limit int) (from int, to int) {
	if size <= limit {
		return 0, size
	}
	if active >= limit {
		from = min(active-limit+1, size-limit)
	}
	return from, from + limit
}
