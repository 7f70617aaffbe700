// Command exampleclient is a minimal IRC bot built on top of
// github.com/meshy/framewirc. It connects to a server, joins a
// channel, greets it, and replies to direct "hello" messages.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/meshy/framewirc"
	"github.com/meshy/framewirc/ircmask"
)

func main() {
	var (
		host     = pflag.String("host", "irc.libera.chat", "IRC server host")
		port     = pflag.Int("port", 6697, "IRC server port")
		useTLS   = pflag.Bool("tls", true, "connect using TLS")
		nick     = pflag.String("nick", "framewircbot", "nickname to use")
		realName = pflag.String("realname", "framewirc example bot", "GECOS / real name field")
		channel  = pflag.String("channel", "#framewirc-test", "channel to join on connect")
	)
	pflag.Parse()

	logger := log.New(os.Stderr, "exampleclient: ", log.LstdFlags)

	greeter := irc.HandlerFunc(func(c *irc.Client, m *irc.Message) {
		switch m.Command {
		case irc.Command(irc.RplWelcome):
			if err := c.Join(*channel); err != nil {
				logger.Printf("join %s: %v", *channel, err)
			}
		case irc.Command(irc.CmdJoin):
			if ircmask.SplitNick(m.Prefix).Nick != c.Nick() {
				return
			}
			if m.Params.Get(1) != *channel {
				return
			}
			if err := c.Privmsg(*channel, "hello!", false); err != nil {
				logger.Printf("privmsg: %v", err)
			}
		case irc.Command(irc.CmdPrivmsg):
			info := ircmask.ParsePrivmsg(m)
			if info.Target != c.Nick() {
				return
			}
			if !strings.HasPrefix(string(info.RawBody), "hello") {
				return
			}
			reply := fmt.Sprintf("hi, %s!", info.SenderNick)
			if err := c.Privmsg(info.SenderNick, reply, false); err != nil {
				logger.Printf("privmsg reply: %v", err)
			}
		}
	})

	bot, err := irc.NewClient(*nick, *realName, greeter)
	if err != nil {
		logger.Fatal(err)
	}
	bot.ErrorLog = logger

	addr := fmt.Sprintf("%s:%d", *host, *port)
	logger.Printf("connecting to %s (tls=%v)", addr, *useTLS)

	opts := []irc.ConnOption{irc.WithPort(*port), irc.WithTLS(*useTLS)}
	if err := bot.ConnectTo(context.Background(), *host, opts...); err != nil {
		logger.Fatal(err)
	}
}
