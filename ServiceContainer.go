package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"gridCore/contracts"
	"log/slog"
	"time"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	Logger             *slog.Logger
	Codec              contracts.AddressCodec
	ExpressionExecutor contracts.ExpressionExecutor
	Store              *WorkbookStore
	EventLoop          *EventLoop
	ElementRegistry    *ElementRegistry
	GridRenderer       *GridRenderer
	FocusBroadcaster   *FocusBroadcaster
	WebhookDispatcher  contracts.WebhookDispatcher
	NavigationEngine   contracts.NavigationEngine
	EditCascade        contracts.EditCascade
	SheetLifecycle     contracts.SheetLifecycle
	ApiController      contracts.ApiController
	Router             *gin.Engine

	started bool
}

func BuildServiceContainer(config AppConfig, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	container.Logger = logger
	codec := NewAddressCodec()
	container.Codec = codec
	container.ExpressionExecutor = NewExpressionExecutor(NewCanonicalizer(codec))
	container.Store = NewWorkbookStore(
		container.Database, container.ExpressionExecutor, NewCellJsonSerializer(), codec,
		config.GridDimensions(), logger.With("component", "store"),
	)

	container.SheetLifecycle, err = NewSheetLifecycle(container.Store, config.SheetNaming, logger.With("component", "sheets"))
	if err != nil {
		_ = container.Database.Close()
		return
	}

	container.EventLoop = NewEventLoop()
	container.ElementRegistry = NewElementRegistry()
	container.GridRenderer = NewGridRenderer(container.Store, codec, container.ElementRegistry, logger.With("component", "renderer"))
	container.FocusBroadcaster = NewFocusBroadcaster(logger.With("component", "focus"))
	container.ElementRegistry.OnFocus(container.FocusBroadcaster.Broadcast)

	webhookDispatcher := NewWebhookDispatcher(logger.With("component", "webhooks"))
	container.Store.Subscribe(webhookDispatcher.Listen)
	container.WebhookDispatcher = webhookDispatcher

	container.NavigationEngine = NewNavigationEngine(
		container.Store, codec, container.EventLoop, container.ElementRegistry, logger.With("component", "navigation"),
	)
	container.EditCascade = NewEditCascade(container.Store, codec, logger.With("component", "edit"))

	container.ApiController = NewApiController(
		container.Store, codec, container.EventLoop,
		container.NavigationEngine, container.EditCascade, container.SheetLifecycle,
		container.WebhookDispatcher, container.FocusBroadcaster,
	)
	container.Router = SetupRouter(container.ApiController)

	return
}

// Start runs the workers, renders the grid and makes sure a first sheet exists
func (container *ServiceContainer) Start() (err error) {
	container.started = true
	container.Store.Start()
	container.EventLoop.Start()
	container.WebhookDispatcher.Start()
	container.GridRenderer.Attach()

	submitted := container.EventLoop.Submit(func() {
		var sheet string
		if sheet, err = container.SheetLifecycle.EnsureFirstSheet(); err == nil {
			container.Logger.Info("workbook ready", "sheet", sheet)
		}
	})
	if !submitted {
		return EventLoopClosedError
	}
	return
}

func (container *ServiceContainer) Close() {
	if container.started {
		container.FocusBroadcaster.Close()
		container.EventLoop.Close()
		container.WebhookDispatcher.Close()
		container.Store.Close()
	}

	if err := container.Database.Close(); err != nil && !errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		container.Logger.Warn("database close failed", "error", err)
	}
}
