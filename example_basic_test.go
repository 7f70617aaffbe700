package irc_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/meshy/framewirc"
	"github.com/meshy/framewirc/ircmask"
)

const myName = "HelloBot"

// myHandler demonstrates working close to the protocol level rather
// than through Client's convenience methods.
//
// On connection success (001) it joins #MyChannel. On join, it checks
// whether the joining nick matched myName and the channel matched
// #MyChannel before sending an introduction. On PRIVMSG, it checks
// whether the message was a direct query to myName and greets back.
func myHandler(c *irc.Client, m *irc.Message) {
	switch m.Command {
	case irc.Command(irc.RplWelcome):
		if b, err := irc.Join("#MyChannel"); err == nil {
			c.Send(b)
		}
	case irc.Command(irc.CmdJoin):
		nick := ircmask.SplitNick(m.Prefix).Nick
		if !strings.EqualFold(nick, myName) {
			return
		}
		if !strings.EqualFold("#MyChannel", m.Params.Get(1)) {
			return
		}
		if b, err := irc.Msg("#MyChannel", "Hello everybody, my name is "+myName); err == nil {
			c.Send(b)
		}
	case irc.Command(irc.CmdPrivmsg):
		info := ircmask.ParsePrivmsg(m)
		if info.Target != myName {
			return
		}
		if strings.HasPrefix(string(info.RawBody), "Hello") {
			if b, err := irc.Msg(info.SenderNick, fmt.Sprintf("hey there, %s!", info.SenderNick)); err == nil {
				c.Send(b)
			}
		}
	}
}

func Example_simple() {
	bot, err := irc.NewClient(myName, "Hello Bot", irc.HandlerFunc(myHandler))
	if err != nil {
		log.Fatal(err)
	}

	if err := bot.ConnectTo(context.Background(), "irc.example.com"); err != nil {
		log.Fatal(err)
	}
}
