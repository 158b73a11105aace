package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"gridCore/contracts"
	"net/http"
	"slices"
	"strings"
)

type ApiController struct {
	Store             contracts.WorkbookStore
	Codec             contracts.AddressCodec
	EventLoop         contracts.EventLoop
	Navigation        contracts.NavigationEngine
	EditCascade       contracts.EditCascade
	SheetLifecycle    contracts.SheetLifecycle
	WebhookDispatcher contracts.WebhookDispatcher
	FocusStream       http.Handler
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value"`
}

type SetFormulaRequest struct {
	Formula string `json:"formula" binding:"required"`
}

type SwitchSheetRequest struct {
	Name string `json:"name" binding:"required"`
}

type MoveFocusRequest struct {
	Direction string `json:"direction" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

type CellResponse struct {
	Id             string                  `json:"id"`
	Content        string                  `json:"content"`
	Formula        string                  `json:"formula"`
	DependentCells []string                `json:"dependent_cells"`
	Style          contracts.ResolvedStyle `json:"style"`
}

type SheetsResponse struct {
	Sheets  []string `json:"sheets"`
	Current string   `json:"current"`
}

var EventLoopClosedError = errors.New("event loop is closed")

func NewApiController(
	store contracts.WorkbookStore, codec contracts.AddressCodec, eventLoop contracts.EventLoop,
	navigation contracts.NavigationEngine, editCascade contracts.EditCascade, sheetLifecycle contracts.SheetLifecycle,
	webhookDispatcher contracts.WebhookDispatcher, focusStream http.Handler,
) *ApiController {
	return &ApiController{
		Store:             store,
		Codec:             codec,
		EventLoop:         eventLoop,
		Navigation:        navigation,
		EditCascade:       editCascade,
		SheetLifecycle:    sheetLifecycle,
		WebhookDispatcher: webhookDispatcher,
		FocusStream:       focusStream,
	}
}

func (api *ApiController) ListSheetsAction(c *gin.Context) {
	response := SheetsResponse{}

	sheets, err := api.Store.Sheets()
	if err == nil {
		response.Sheets = sheets
		response.Current, err = api.Store.CurrentSheet()
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) AddSheetAction(c *gin.Context) {
	var name string
	err := api.submit(func() (err error) {
		name, err = api.SheetLifecycle.AddSheet()
		return
	})

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, gin.H{"name": name})
	}
}

func (api *ApiController) SwitchSheetAction(c *gin.Context) {
	request := SwitchSheetRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// the lifecycle trusts its callers, unknown names stop here
	sheets, err := api.Store.Sheets()
	if err == nil && !slices.Contains(sheets, request.Name) {
		err = contracts.SheetNotFoundError
	}

	if err == nil {
		err = api.submit(func() error {
			return api.SheetLifecycle.SwitchSheet(request.Name)
		})
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"current": request.Name})
	}
}

// DeleteSheetAction removes the sheet, the last one is replaced by a fresh first sheet
func (api *ApiController) DeleteSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var current string
	err := api.submit(func() (err error) {
		if err = api.Store.Dispatch(contracts.DeleteSheet(params.SheetId)); err == nil {
			current, err = api.SheetLifecycle.EnsureFirstSheet()
		}
		return
	})

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"current": current})
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	cell, err := api.Store.GetCell(params.SheetId, params.CellId)
	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, api.makeCellResponse(cell))
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	request := SetCellRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := api.submit(func() error {
		return api.EditCascade.ApplyEdit(params.SheetId, params.CellId, request.Value)
	})

	api.respondCell(c, params, http.StatusCreated, err)
}

func (api *ApiController) SetFormulaAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	request := SetFormulaRequest{}
	err := c.ShouldBindJSON(&request)
	if err == nil && !strings.HasPrefix(request.Formula, FormulaPrefix) {
		err = errors.New("formula must start with " + FormulaPrefix)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err = api.submit(func() error {
		err := api.Store.Dispatch(contracts.SetCellProperty(params.CellId, params.SheetId, contracts.FormulaProperty, request.Formula))
		if err != nil {
			return err
		}
		return api.Store.Dispatch(contracts.ScheduleReevaluation(params.CellId, params.SheetId))
	})

	api.respondCell(c, params, http.StatusCreated, err)
}

func (api *ApiController) SetStyleAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	style := contracts.CellStyle{}
	if err := c.ShouldBindJSON(&style); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := api.submit(func() error {
		return api.Store.Dispatch(contracts.SetCellStyle(params.CellId, params.SheetId, style))
	})

	api.respondCell(c, params, http.StatusOK, err)
}

func (api *ApiController) FocusCellAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	err := api.submit(func() error {
		return api.Navigation.FocusCell(params.SheetId, params.CellId)
	})

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"active": params.CellId, "element": api.Codec.ElementId(params.SheetId, params.CellId)})
	}
}

func (api *ApiController) MoveFocusAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	request := MoveFocusRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	direction, known := ParseDirection(request.Direction)
	if !known {
		direction = contracts.Direction(request.Direction)
	}

	var target string
	err := api.submit(func() (err error) {
		target, err = api.Navigation.MoveFocus(params.SheetId, params.CellId, direction)
		return
	})

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"active": target, "element": api.Codec.ElementId(params.SheetId, target)})
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	request := SubscribeRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// sheet existence check
	if _, err := api.Store.Dimensions(params.SheetId); err != nil {
		api.respondError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.SheetId, params.CellId, request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"webhook_url": request.WebhookUrl})
}

func (api *ApiController) FocusStreamAction(c *gin.Context) {
	api.FocusStream.ServeHTTP(c.Writer, c.Request)
}

func (api *ApiController) bindCellParams(c *gin.Context) (params CellEndpointParams, ok bool) {
	var cellAddress contracts.CellAddress
	err := c.ShouldBindUri(&params)
	if err == nil {
		cellAddress, err = api.Codec.Decode(params.CellId)
	}

	if err != nil {
		api.respondError(c, err)
		return params, false
	}
	params.CellId = cellAddress.String()
	return params, true
}

// submit runs handler as one input event of the UI thread
func (api *ApiController) submit(handler func() error) (err error) {
	if !api.EventLoop.Submit(func() { err = handler() }) {
		return EventLoopClosedError
	}
	return
}

func (api *ApiController) respondCell(c *gin.Context, params CellEndpointParams, status int, err error) {
	var cell *contracts.CellState
	if err == nil {
		cell, err = api.Store.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(status, api.makeCellResponse(cell))
	}
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, contracts.InvalidAddressError),
		errors.Is(err, contracts.ReservedSheetNameError):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, contracts.SheetNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, contracts.StoreClosedError),
		errors.Is(err, EventLoopClosedError):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func (api *ApiController) makeCellResponse(cell *contracts.CellState) CellResponse {
	dependentCells := cell.DependentCells
	if dependentCells == nil {
		dependentCells = []string{}
	}

	return CellResponse{
		Id:             cell.Id,
		Content:        cell.Content,
		Formula:        cell.Formula,
		DependentCells: dependentCells,
		Style:          cell.Style.Resolve(),
	}
}

var _ contracts.ApiController = (*ApiController)(nil)
