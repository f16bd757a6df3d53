package tui

type noteSavedMsg struct {
	saved bool
	err   error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clipboardFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
