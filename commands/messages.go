package commands

import (
	"fmt"
	"strings"
)

// SendMessageCmd appends a message to an enabled user's history.
func SendMessageCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(SendMessage)
	if !ok {
		return UnknownCommand
	}

	if err := dir.SendMessage(c.Username, c.Message); err != nil {
		return failed(err, `SEND MESSAGE %s "%s"`, c.Username, c.Message)
	}
	return succeeded(`SEND MESSAGE %s "%s"`, c.Username, c.Message)
}

// GetMessageHistoryCmd lists a user's messages in the order they were sent.
func GetMessageHistoryCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(GetMessageHistory)
	if !ok {
		return UnknownCommand
	}

	messages, err := dir.MessageHistory(c.Username)
	if err != nil {
		return failed(err, "GET MESSAGE HISTORY %s", c.Username)
	}

	quoted := make([]string, len(messages))
	for i, m := range messages {
		quoted[i] = `"` + m + `"`
	}
	return succeeded("GET MESSAGE HISTORY %s\nMessages: %s", c.Username, joinOrNone(quoted))
}

// PingCmd always succeeds. Every attempt is reported as sent, and as received
// only if the user exists.
func PingCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(Ping)
	if !ok {
		return UnknownCommand
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Send ping to %s (%d):", c.Username, c.Times)
	for i := 0; i < c.Times; i++ {
		fmt.Fprintf(&sb, "\nSent ping to %s", c.Username)
		if dir.UserExists(c.Username) {
			fmt.Fprintf(&sb, "\n%s received a ping", c.Username)
		}
	}

	return succeeded("%s", sb.String())
}

func init() {
	mustRegister(KindSendMessage, SendMessageCmd)
	mustRegister(KindPing, PingCmd)
	mustRegister(KindGetMessageHistory, GetMessageHistoryCmd)
}
