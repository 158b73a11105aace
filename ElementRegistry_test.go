package main

import (
	"github.com/stretchr/testify/assert"
	"gridCore/contracts"
	"testing"
)

func TestElementRegistry_Focus(t *testing.T) {
	registry := NewElementRegistry()
	registry.Replace([]string{"sheet1-0-0", "sheet1-0-1"})

	var notified []string
	registry.OnFocus(func(elementId string) {
		notified = append(notified, elementId)
	})

	assert.NoError(t, registry.Focus("sheet1-0-1"))
	assert.Equal(t, "sheet1-0-1", registry.Focused())

	err := registry.Focus("sheet1-9-9")
	assert.ErrorIs(t, err, contracts.FocusTargetMissingError)
	assert.Equal(t, "sheet1-0-1", registry.Focused())

	assert.Equal(t, []string{"sheet1-0-1"}, notified)

	t.Run("replace_drops_focus_of_removed_element", func(t *testing.T) {
		registry.Replace([]string{"sheet1-0-1", "sheet1-0-2"})
		assert.Equal(t, "sheet1-0-1", registry.Focused())

		registry.Replace([]string{"sheet2-0-0"})
		assert.Equal(t, "", registry.Focused())
		assert.False(t, registry.Has("sheet1-0-1"))
		assert.True(t, registry.Has("sheet2-0-0"))
	})
}

func TestGridRenderer_Render(t *testing.T) {
	store := _newTestStore(t)
	codec := NewAddressCodec()
	registry := NewElementRegistry()
	renderer := NewGridRenderer(store, codec, registry, _newDiscardLogger())
	renderer.Attach()

	assert.False(t, registry.Has("sheet1-0-0"))

	assert.NoError(t, store.Dispatch(contracts.CreateSheet("sheet1")))
	assert.NoError(t, store.Dispatch(contracts.SwitchSheet("sheet1")))

	assert.True(t, registry.Has("sheet1-0-0"))
	assert.True(t, registry.Has("sheet1-2-1"))
	assert.False(t, registry.Has("sheet1-3-0"))

	renderer.Render("missing")
	assert.False(t, registry.Has("sheet1-0-0"))
}

func TestGridRenderer_RenderFarActiveCell(t *testing.T) {
	store := _newTestStore(t)
	codec := NewAddressCodec()
	registry := NewElementRegistry()
	NewGridRenderer(store, codec, registry, _newDiscardLogger()).Attach()

	loop := NewEventLoop()
	loop.Start()
	t.Cleanup(loop.Close)
	engine := NewNavigationEngine(store, codec, loop, registry, _newDiscardLogger())

	assert.NoError(t, store.Dispatch(contracts.CreateSheet("sheet1")))
	assert.NoError(t, store.Dispatch(contracts.SwitchSheet("sheet1")))

	assert.NotPanics(t, func() {
		assert.NoError(t, engine.FocusCell("sheet1", "4000000000-4000000000"))
	})

	dimensions, err := store.Dimensions("sheet1")
	assert.NoError(t, err)
	assert.Equal(t, contracts.SheetDimensions{Rows: 4000000001, Cols: 4000000001}, dimensions)

	// only the window ending at the active cell is rendered
	assert.Equal(t, ViewportRows*ViewportCols, registry.Len())
	assert.True(t, registry.Has("sheet1-4000000000-4000000000"))
	assert.True(t, registry.Has("sheet1-3999999901-3999999951"))
	assert.False(t, registry.Has("sheet1-3999999900-4000000000"))
	assert.False(t, registry.Has("sheet1-0-0"))

	// back near the origin the window follows the active cell
	assert.NoError(t, engine.FocusCell("sheet1", "1-1"))
	assert.True(t, registry.Has("sheet1-0-0"))
	assert.True(t, registry.Has("sheet1-99-49"))
	assert.False(t, registry.Has("sheet1-100-0"))
}

func TestViewportRange(t *testing.T) {
	testCases := []struct {
		name                     string
		active, size, limit      int
		expectedFrom, expectedTo int
	}{
		{"fits", 5, 20, 100, 0, 20},
		{"active_inside_first_window", 10, 500, 100, 0, 100},
		{"active_far", 450, 500, 100, 351, 451},
		{"active_last", 499, 500, 100, 400, 500},
		{"active_outside", 900, 500, 100, 400, 500},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			from, to := viewportRange(testCase.active, testCase.size, testCase.limit)
			assert.Equal(t, testCase.expectedFrom, from)
			assert.Equal(t, testCase.expectedTo, to)
		})
	}
}
