package main

import (
	"bytes"
	"errors"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gridCore/contracts"
	"gridCore/mocks"
	"net/http"
	"net/http/httptest"
	"testing"
)

type apiControllerMocks struct {
	store      *mocks.WorkbookStore
	navigation *mocks.NavigationEngine
	cascade    *mocks.EditCascade
	lifecycle  *mocks.SheetLifecycle
	webhooks   *mocks.WebhookDispatcher
}

func _newMockedApiController(t *testing.T) (*ApiController, apiControllerMocks) {
	gin.SetMode(gin.TestMode)

	loop := NewEventLoop()
	loop.Start()
	t.Cleanup(loop.Close)

	m := apiControllerMocks{
		store:      mocks.NewWorkbookStore(t),
		navigation: mocks.NewNavigationEngine(t),
		cascade:    mocks.NewEditCascade(t),
		lifecycle:  mocks.NewSheetLifecycle(t),
		webhooks:   mocks.NewWebhookDispatcher(t),
	}

	controller := NewApiController(
		m.store, NewAddressCodec(), loop, m.navigation, m.cascade, m.lifecycle, m.webhooks,
		http.NotFoundHandler(),
	)
	return controller, m
}

func _request(controller contracts.ApiController, method string, path string, data any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if data != nil {
		jsonBody, _ := json.Marshal(data)
		body = bytes.NewReader(jsonBody)
	} else {
		body = bytes.NewReader(nil)
	}

	router := SetupRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/api/"+ApiVersion+path, body)
	router.ServeHTTP(w, req)
	return w
}

func TestApiController_GetCellAction(t *testing.T) {
	t.Run("should return cell with resolved style", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		bold := true
		m.store.On("GetCell", "sheet1", "1-2").Return(&contracts.CellState{
			Id:             "1-2",
			Content:        "3",
			Formula:        "=R0C0+2",
			DependentCells: []string{"4-4"},
			Style:          contracts.CellStyle{Bold: &bold},
		}, nil).Once()

		w := _request(controller, http.MethodGet, "/sheets/sheet1/cells/1-2", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", response["content"])
		assert.Equal(t, "=R0C0+2", response["formula"])
		assert.Equal(t, []any{"4-4"}, response["dependent_cells"])

		style := response["style"].(map[string]any)
		assert.Equal(t, true, style["bold"])
		assert.Equal(t, false, style["italic"])
		assert.Equal(t, contracts.DefaultColor, style["color"])
		assert.Equal(t, contracts.DefaultBackgroundColor, style["background_color"])
	})

	t.Run("invalid address", func(t *testing.T) {
		controller, _ := _newMockedApiController(t)

		for _, cellId := range []string{"A1", "01-2"} {
			w := _request(controller, http.MethodGet, "/sheets/sheet1/cells/"+cellId, nil)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, response["error"], contracts.InvalidAddressError.Error())
		}
	})

	t.Run("sheet not found", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("GetCell", "sheet9", "0-0").Return(nil, contracts.SheetNotFoundError).Once()

		w := _request(controller, http.MethodGet, "/sheets/sheet9/cells/0-0", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, contracts.SheetNotFoundError.Error(), response["error"])
	})

	t.Run("custom error", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("GetCell", "sheet1", "0-0").Return(nil, errors.New("test")).Once()

		w := _request(controller, http.MethodGet, "/sheets/sheet1/cells/0-0", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	t.Run("success write", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.cascade.On("ApplyEdit", "sheet1", "0-0", "42").Return(nil).Once()
		m.store.On("GetCell", "sheet1", "0-0").Return(&contracts.CellState{Id: "0-0", Content: "42"}, nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-0", map[string]string{"value": "42"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "42", response["content"])
		assert.Equal(t, []any{}, response["dependent_cells"])
	})

	t.Run("empty value clears cell", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.cascade.On("ApplyEdit", "sheet1", "0-0", "").Return(nil).Once()
		m.store.On("GetCell", "sheet1", "0-0").Return(&contracts.CellState{Id: "0-0"}, nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-0", map[string]string{})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("cascade error", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.cascade.On("ApplyEdit", "sheet2", "0-0", "42").Return(contracts.SheetNotFoundError).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet2/cells/0-0", map[string]string{"value": "42"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("broken body", func(t *testing.T) {
		controller, _ := _newMockedApiController(t)

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-0", "not an object")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_SetFormulaAction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dispatch", contracts.SetCellProperty("0-1", "sheet1", contracts.FormulaProperty, "=R0C0*2")).Return(nil).Once()
		m.store.On("Dispatch", contracts.ScheduleReevaluation("0-1", "sheet1")).Return(nil).Once()
		m.store.On("GetCell", "sheet1", "0-1").Return(&contracts.CellState{Id: "0-1", Content: "4", Formula: "=R0C0*2"}, nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-1/formula", map[string]string{"formula": "=R0C0*2"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "4", response["content"])
	})

	t.Run("not a formula", func(t *testing.T) {
		controller, _ := _newMockedApiController(t)

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-1/formula", map[string]string{"formula": "R0C0*2"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("store rejects", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dispatch", mock.Anything).Return(contracts.SheetNotFoundError).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet3/cells/0-1/formula", map[string]string{"formula": "=1"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		m.store.AssertNumberOfCalls(t, "Dispatch", 1)
	})
}

func TestApiController_SetStyleAction(t *testing.T) {
	controller, m := _newMockedApiController(t)
	italic := true
	m.store.On("Dispatch", contracts.SetCellStyle("0-0", "sheet1", contracts.CellStyle{Italic: &italic, Color: "red"})).Return(nil).Once()
	m.store.On("GetCell", "sheet1", "0-0").Return(&contracts.CellState{
		Id:    "0-0",
		Style: contracts.CellStyle{Italic: &italic, Color: "red"},
	}, nil).Once()

	w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-0/style", map[string]any{"italic": true, "color": "red"})
	response, err := _parseJsonBody(w)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)

	style := response["style"].(map[string]any)
	assert.Equal(t, true, style["italic"])
	assert.Equal(t, false, style["bold"])
	assert.Equal(t, "red", style["color"])
}

func TestApiController_FocusActions(t *testing.T) {
	t.Run("focus cell", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.navigation.On("FocusCell", "sheet1", "2-3").Return(nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/2-3/focus", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2-3", response["active"])
		assert.Equal(t, "sheet1-2-3", response["element"])
	})

	t.Run("move by key name", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.navigation.On("MoveFocus", "sheet1", "2-3", contracts.DirectionLeft).Return("2-2", nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/2-3/move", map[string]string{"direction": "ArrowLeft"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2-2", response["active"])
		assert.Equal(t, "sheet1-2-2", response["element"])
	})

	t.Run("move unknown direction", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.navigation.On("MoveFocus", "sheet1", "2-3", contracts.Direction("PageUp")).Return("2-3", nil).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/2-3/move", map[string]string{"direction": "PageUp"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("move without direction", func(t *testing.T) {
		controller, _ := _newMockedApiController(t)

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/2-3/move", map[string]string{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("move from invalid address", func(t *testing.T) {
		controller, _ := _newMockedApiController(t)

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/-1-3/move", map[string]string{"direction": "up"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_SheetActions(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Sheets").Return([]string{"sheet1", "sheet2"}, nil).Once()
		m.store.On("CurrentSheet").Return("sheet2", nil).Once()

		w := _request(controller, http.MethodGet, "/sheets", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{"sheet1", "sheet2"}, response["sheets"])
		assert.Equal(t, "sheet2", response["current"])
	})

	t.Run("add", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.lifecycle.On("AddSheet").Return("sheet3", nil).Once()

		w := _request(controller, http.MethodPost, "/sheets", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "sheet3", response["name"])
	})

	t.Run("switch", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Sheets").Return([]string{"sheet1", "sheet2"}, nil).Once()
		m.lifecycle.On("SwitchSheet", "sheet1").Return(nil).Once()

		w := _request(controller, http.MethodPut, "/sheets/current", map[string]string{"name": "sheet1"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("switch to unknown sheet", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Sheets").Return([]string{"sheet1"}, nil).Once()

		w := _request(controller, http.MethodPut, "/sheets/current", map[string]string{"name": "sheet7"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dispatch", contracts.DeleteSheet("sheet1")).Return(nil).Once()
		m.lifecycle.On("EnsureFirstSheet").Return("sheet2", nil).Once()

		w := _request(controller, http.MethodDelete, "/sheets/sheet1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sheet2", response["current"])
	})

	t.Run("delete reserved", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dispatch", contracts.DeleteSheet("__workbook")).Return(contracts.SheetNotFoundError).Once()

		w := _request(controller, http.MethodDelete, "/sheets/__workbook", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_SubscribeAction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dimensions", "sheet1").Return(contracts.SheetDimensions{Rows: 3, Cols: 3}, nil).Once()
		m.webhooks.On("SetWebhookUrl", "sheet1", "0-0", "http://localhost/hook").Return().Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet1/cells/0-0/"+subscribePath, map[string]string{"webhook_url": "http://localhost/hook"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost/hook", response["webhook_url"])
	})

	t.Run("sheet not found", func(t *testing.T) {
		controller, m := _newMockedApiController(t)
		m.store.On("Dimensions", "sheet5").Return(contracts.SheetDimensions{}, contracts.SheetNotFoundError).Once()

		w := _request(controller, http.MethodPost, "/sheets/sheet5/cells/0-0/"+subscribePath, map[string]string{"webhook_url": "http://localhost/hook"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_ClosedEventLoop(t *testing.T) {
	controller, _ := _newMockedApiController(t)
	controller.EventLoop.(*EventLoop).Close()

	w := _request(controller, http.MethodPost, "/sheets", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}
