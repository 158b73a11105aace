package contracts

import "errors"

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Scheduler runs tasks after the current input event has been observed by the rendering layer
type Scheduler interface {
	Defer(task func())
}

// EventLoop runs input events one at a time, deferred tasks included
type EventLoop interface {
	Scheduler
	Submit(handler func()) bool
}

// Focuser moves UI focus to a rendered element
type Focuser interface {
	Focus(elementId string) error
}

type NavigationEngine interface {
	MoveFocus(sheet string, current string, direction Direction) (string, error)
	FocusCell(sheet string, address string) error
}

type EditCascade interface {
	ApplyEdit(sheet string, address string, content string) error
}

type SheetLifecycle interface {
	EnsureFirstSheet() (string, error)
	AddSheet() (string, error)
	SwitchSheet(name string) error
}

type SheetNaming string

const (
	CountSheetNaming    SheetNaming = "count"
	SequenceSheetNaming SheetNaming = "sequence"
)

var UnknownSheetNamingError = errors.New("unknown sheet naming strategy")
