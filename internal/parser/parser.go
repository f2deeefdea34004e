// Package parser turns raw message text into a scheduled reminder.
//
// A valid message is exactly: a 16-character date/time block in the
// form dd.MM.yyyy HH:mm, a single whitespace separator, and the note
// (the rest of the message). Nothing may precede or follow.
package parser

import (
	"errors"
	"time"
)

// Layout of the date/time block, 16 bytes wide.
const dateTimeLayout = "02.01.2006 15:04"

const blockLen = len(dateTimeLayout)

var (
	// ErrFormat reports text that does not have the block/separator/note shape.
	ErrFormat = errors.New("message does not match the dd.MM.yyyy HH:mm note format")
	// ErrDateTime reports a well-shaped block that is not a valid calendar date and time.
	ErrDateTime = errors.New("date or time is not a valid calendar value")
)

// Reminder is a successfully parsed request: when to fire and what to say.
type Reminder struct {
	DueAt time.Time
	Note  string
}

// Parse classifies text as a reminder request. It is pure: no side
// effects, the caller decides what each outcome means.
//
// The whole message must match. A date block embedded mid-sentence, a
// missing note or an empty message all yield ErrFormat. A block that
// passes the lexical checks but fails strict calendar parsing (month 13,
// day 32, hour 25, misplaced dots) yields ErrDateTime. DueAt carries
// minute granularity; the layout has no seconds to begin with.
func Parse(text string, loc *time.Location) (Reminder, error) {
	// Block, one separator byte, at least one note byte.
	if len(text) < blockLen+2 {
		return Reminder{}, ErrFormat
	}
	block := text[:blockLen]
	for i := 0; i < blockLen; i++ {
		if !isBlockByte(block[i]) {
			return Reminder{}, ErrFormat
		}
	}
	if !isSpaceByte(text[blockLen]) {
		return Reminder{}, ErrFormat
	}
	note := text[blockLen+1:]

	dueAt, err := time.ParseInLocation(dateTimeLayout, block, loc)
	if err != nil {
		return Reminder{}, ErrDateTime
	}
	return Reminder{DueAt: dueAt, Note: note}, nil
}

// isBlockByte reports whether b may appear in the date/time block:
// digits, '.', ':' and whitespace. Any multi-byte rune fails here,
// which makes non-ASCII prefixes a format error rather than a panic.
func isBlockByte(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == ':' || isSpaceByte(b)
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
