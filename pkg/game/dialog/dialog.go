// Package dialog provides the modal alert and prompt queue shown over the game.
package dialog

import (
	"unicode"
	"unicode/utf8"
)

// MaxInput is the longest answer a prompt accepts, in runes
const MaxInput = 64

// Kind distinguishes alerts from prompts
type Kind int

const (
	KindAlert Kind = iota
	KindPrompt
)

// Modal is one queued dialog
type Modal struct {
	Kind    Kind
	Message string
	Input   string // typed text, prompts only

	answer func(input string, ok bool)
}

// Queue is a FIFO of modals. Only the head is shown and takes input.
// It is not safe for concurrent use; it belongs to the game thread.
type Queue struct {
	modals []*Modal
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Alert queues a notification that closes on confirm or cancel
func (q *Queue) Alert(msg string) {
	q.modals = append(q.modals, &Modal{Kind: KindAlert, Message: msg})
}

// Prompt queues a text question. answer runs once, after the modal is removed,
// so it may queue further dialogs.
func (q *Queue) Prompt(msg string, answer func(input string, ok bool)) {
	q.modals = append(q.modals, &Modal{Kind: KindPrompt, Message: msg, answer: answer})
}

// Active reports whether a modal is showing
func (q *Queue) Active() bool {
	return len(q.modals) > 0
}

// Current returns the modal being shown, or nil
func (q *Queue) Current() *Modal {
	if len(q.modals) == 0 {
		return nil
	}
	return q.modals[0]
}

// Len returns the number of queued modals including the current one
func (q *Queue) Len() int {
	return len(q.modals)
}

// Type appends printable runes to the current prompt's input
func (q *Queue) Type(runes ...rune) {
	m := q.Current()
	if m == nil || m.Kind != KindPrompt {
		return
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) || utf8.RuneCountInString(m.Input) >= MaxInput {
			continue
		}
		m.Input += string(r)
	}
}

// Backspace removes the last rune of the current prompt's input
func (q *Queue) Backspace() {
	m := q.Current()
	if m == nil || m.Kind != KindPrompt || m.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(m.Input)
	m.Input = m.Input[:len(m.Input)-size]
}

// Confirm closes the current modal; a prompt submits its input
func (q *Queue) Confirm() {
	q.close(true)
}

// Cancel closes the current modal; a prompt answers with ok false
func (q *Queue) Cancel() {
	q.close(false)
}

func (q *Queue) close(ok bool) {
	m := q.Current()
	if m == nil {
		return
	}
	q.modals[0] = nil
	q.modals = q.modals[1:]

	if m.answer == nil {
		return
	}
	if ok {
		m.answer(m.Input, true)
	} else {
		m.answer("", false)
	}
}
