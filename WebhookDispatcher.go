package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"gridCore/contracts"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const WebhookWorkersCount = 5

const webhookQueueSize = 20

type CellWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Payload WebhookPayload
}

type WebhookPayload struct {
	Sheet   string `json:"sheet"`
	Id      string `json:"id"`
	Value   string `json:"value"`
	Formula string `json:"formula,omitempty"`
}

type WebhookDispatcher struct {
	client *http.Client
	logger *slog.Logger

	queue   chan WebhookSendCommand
	closed  chan struct{}
	workers sync.WaitGroup
	once    sync.Once

	mu       sync.RWMutex
	webhooks map[string]CellWebhooks
}

func NewWebhookDispatcher(logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger:   logger,
		queue:    make(chan WebhookSendCommand, webhookQueueSize),
		closed:   make(chan struct{}),
		webhooks: map[string]CellWebhooks{},
	}
}

// SetWebhookUrl subscribes the url to changes of one cell, an empty url unsubscribes
func (d *WebhookDispatcher) SetWebhookUrl(sheetId string, cellId string, webhookUrl string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if webhookUrl == "" {
		delete(d.webhooks[sheetId], cellId)
		if len(d.webhooks[sheetId]) == 0 {
			delete(d.webhooks, sheetId)
		}
		return
	}

	if _, ok := d.webhooks[sheetId]; !ok {
		d.webhooks[sheetId] = CellWebhooks{}
	}
	d.webhooks[sheetId][cellId] = webhookUrl
}

func (d *WebhookDispatcher) GetWebhookUrl(sheetId string, cellId string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.webhooks[sheetId][cellId]
}

func (d *WebhookDispatcher) Notify(sheetId string, cells []*contracts.CellState) {
	commands := d.collect(sheetId, cells)
	if len(commands) == 0 {
		return
	}

	go d.addToQueue(commands)
}

// Listen forwards cells changed by a committed store command
func (d *WebhookDispatcher) Listen(event contracts.StoreEvent) {
	switch event.Command.Kind {
	case contracts.DeleteSheetCommand:
		d.mu.Lock()
		delete(d.webhooks, event.Command.Sheet)
		d.mu.Unlock()
	default:
		if len(event.ChangedCells) > 0 {
			d.Notify(event.Command.Sheet, event.ChangedCells)
		}
	}
}

func (d *WebhookDispatcher) collect(sheetId string, cells []*contracts.CellState) []WebhookSendCommand {
	d.mu.RLock()
	defer d.mu.RUnlock()

	sheetWebhooks, ok := d.webhooks[sheetId]
	if !ok {
		return nil
	}

	commands := make([]WebhookSendCommand, 0, len(cells))
	for _, cell := range cells {
		if webhook, ok := sheetWebhooks[cell.Id]; ok {
			commands = append(commands, WebhookSendCommand{
				Webhook: webhook,
				Payload: WebhookPayload{
					Sheet:   sheetId,
					Id:      cell.Id,
					Value:   cell.Content,
					Formula: cell.Formula,
				},
			})
		}
	}
	return commands
}

func (d *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		select {
		case d.queue <- command:
		case <-d.closed:
			return
		}
	}
}

func (d *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		d.workers.Add(1)
		go d.runWebhookSenderWorker()
	}
}

// Close stops the workers, commands still queued are dropped
func (d *WebhookDispatcher) Close() {
	d.once.Do(func() {
		close(d.closed)
	})
	d.workers.Wait()
}

func (d *WebhookDispatcher) runWebhookSenderWorker() {
	defer d.workers.Done()

	for {
		select {
		case command := <-d.queue:
			d.send(command)
		case <-d.closed:
			return
		}
	}
}

func (d *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := json.Marshal(command.Payload)
	if err != nil {
		d.logger.Error("webhook payload encode failed", "webhook", command.Webhook, "error", err)
		return
	}

	response, err := d.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		d.logger.Warn("webhook send error", "webhook", command.Webhook, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		d.logger.Warn("unexpected webhook response", "webhook", command.Webhook, "status", response.Status)
	}
}
