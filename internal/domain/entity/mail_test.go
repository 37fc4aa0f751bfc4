package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMailSummary_String(t *testing.T) {
	received := time.Date(2025, 11, 3, 9, 15, 0, 0, time.UTC)

	read := MailSummary{
		EntryID:    "AAMkAD01",
		Sender:     "Jane Doe",
		Subject:    "Worklist status",
		ReceivedAt: received,
	}
	assert.Equal(t, "  2025-11-03 09:15 | Jane Doe | Worklist status | entry_id=AAMkAD01", read.String())

	unread := read
	unread.Unread = true
	assert.Equal(t, "* 2025-11-03 09:15 | Jane Doe | Worklist status | entry_id=AAMkAD01", unread.String())
}
