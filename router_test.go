package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gridCore/mocks"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expectedApiRoutes := [][3]string{
		{http.MethodGet, "/sheets", "ListSheetsAction"},
		{http.MethodPost, "/sheets", "AddSheetAction"},
		{http.MethodPut, "/sheets/current", "SwitchSheetAction"},
		{http.MethodDelete, "/sheets/sheet1", "DeleteSheetAction"},
		{http.MethodGet, "/sheets/sheet1/cells/0-0", "GetCellAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0", "SetCellAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0/formula", "SetFormulaAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0/style", "SetStyleAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0/focus", "FocusCellAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0/move", "MoveFocusAction"},
		{http.MethodPost, "/sheets/sheet1/cells/0-0/" + subscribePath, "SubscribeAction"},
		{http.MethodGet, "/focus/ws", "FocusStreamAction"},
	}

	for _, expectedRoute := range expectedApiRoutes {
		t.Run("Route "+expectedRoute[2], func(t *testing.T) {
			apiController := mocks.NewApiController(t)
			router := SetupRouter(apiController)

			apiController.On(expectedRoute[2], mock.Anything).Return()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(expectedRoute[0], "/api/"+ApiVersion+expectedRoute[1], nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			apiController.AssertNumberOfCalls(t, expectedRoute[2], 1)
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		apiController := mocks.NewApiController(t)
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1/0-0", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
