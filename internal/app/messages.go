package app

import "stickies/internal/types"

type notesReloadedMsg struct {
	notes []types.Note
	err   error
}

type notesSavedMsg struct {
	err error
}

type storeChangedMsg struct{}

type flashExpiredMsg struct {
	id int
}
