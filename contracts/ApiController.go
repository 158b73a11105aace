package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	ListSheetsAction(c *gin.Context)
	AddSheetAction(c *gin.Context)
	SwitchSheetAction(c *gin.Context)
	DeleteSheetAction(c *gin.Context)

	GetCellAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	SetFormulaAction(c *gin.Context)
	SetStyleAction(c *gin.Context)
	FocusCellAction(c *gin.Context)
	MoveFocusAction(c *gin.Context)
	SubscribeAction(c *gin.Context)

	FocusStreamAction(c *gin.Context)
}
