package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, cellId string, webhookUrl string)
	GetWebhookUrl(sheetId string, cellId string) string
	Notify(sheetId string, cells []*CellState)
	Listen(event StoreEvent)
	Start()
	Close()
}
