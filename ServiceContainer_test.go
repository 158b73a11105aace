package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"gridCore/contracts"
	"os"
	"testing"
)

func _newTestConfig(t *testing.T) AppConfig {
	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Remove(f.Name())
	})

	return AppConfig{
		DatabaseFilepath: f.Name(),
		ListenAddress:    DefaultListenAddress,
		SheetNaming:      contracts.SequenceSheetNaming,
		GridRows:         4,
		GridCols:         3,
		LogLevel:         "info",
	}
}

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serviceContainer, err := BuildServiceContainer(_newTestConfig(t), _newDiscardLogger())
	assert.NoError(t, err)
	defer serviceContainer.Close()

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check expression executor
	assert.NotNil(t, serviceContainer.ExpressionExecutor)
	assert.IsType(t, &ExpressionExecutor{}, serviceContainer.ExpressionExecutor)

	expressionExecutor := serviceContainer.ExpressionExecutor.(*ExpressionExecutor)
	assert.IsType(t, &Canonicalizer{}, expressionExecutor.canonicalizer)

	// check store
	assert.NotNil(t, serviceContainer.Store)
	assert.Equal(t, serviceContainer.Database, serviceContainer.Store.db)
	assert.Equal(t, serviceContainer.ExpressionExecutor, serviceContainer.Store.executor)
	assert.IsType(t, &CellJsonSerializer{}, serviceContainer.Store.serializer)
	assert.Equal(t, contracts.SheetDimensions{Rows: 4, Cols: 3}, serviceContainer.Store.defaultDimensions)

	// check engines
	assert.IsType(t, &NavigationEngine{}, serviceContainer.NavigationEngine)
	navigation := serviceContainer.NavigationEngine.(*NavigationEngine)
	assert.Equal(t, serviceContainer.EventLoop, navigation.scheduler)
	assert.Equal(t, serviceContainer.ElementRegistry, navigation.focuser)

	assert.IsType(t, &EditCascade{}, serviceContainer.EditCascade)
	assert.IsType(t, &SheetLifecycle{}, serviceContainer.SheetLifecycle)

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	// check api controller
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.Store, apiController.Store)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)
	assert.Equal(t, serviceContainer.FocusBroadcaster, apiController.FocusStream)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	// 12 api routes + health check
	assert.Len(t, serviceContainer.Router.Routes(), 13)
}

func TestBuildServiceContainer_UnknownSheetNaming(t *testing.T) {
	config := _newTestConfig(t)
	config.SheetNaming = "alphabet"

	_, err := BuildServiceContainer(config, _newDiscardLogger())
	assert.ErrorIs(t, err, contracts.UnknownSheetNamingError)
}

func TestServiceContainer_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serviceContainer, err := BuildServiceContainer(_newTestConfig(t), _newDiscardLogger())
	assert.NoError(t, err)
	defer serviceContainer.Close()

	assert.NoError(t, serviceContainer.Start())

	sheets, err := serviceContainer.Store.Sheets()
	assert.NoError(t, err)
	assert.Equal(t, []string{"sheet1"}, sheets)

	// grid rendered for the first sheet
	assert.True(t, serviceContainer.ElementRegistry.Has("sheet1-3-2"))
	assert.False(t, serviceContainer.ElementRegistry.Has("sheet1-4-0"))

	// navigation through the running loop focuses the rendered element
	var target string
	serviceContainer.EventLoop.Submit(func() {
		target, err = serviceContainer.NavigationEngine.MoveFocus("sheet1", "0-0", contracts.DirectionDown)
	})
	assert.NoError(t, err)
	assert.Equal(t, "1-0", target)
	assert.Equal(t, "sheet1-1-0", serviceContainer.ElementRegistry.Focused())
}
