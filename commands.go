package irc

// Msg builds a PRIVMSG to target with the given text body. Prefer
// Client.Privmsg for payloads that might exceed a single line.
func Msg(target, message string) ([]byte, error) {
	return BuildMessage(CmdPrivmsg, []string{target}, nil, []byte(message))
}

// Notice builds a NOTICE to target with the given text body.
func Notice(target, message string) ([]byte, error) {
	return BuildMessage(CmdNotice, []string{target}, nil, []byte(message))
}

// Describe builds a CTCP ACTION to target, displayed by most clients
// as "* nick action", the "/me" command.
func Describe(target, action string) ([]byte, error) {
	return BuildMessage(CmdPrivmsg, []string{target}, nil, []byte("\x01ACTION "+action+"\x01"))
}

// Nick builds a nickname change command.
func Nick(name string) ([]byte, error) {
	return NewMessage(CmdNick, name)
}

// Join builds a command to join channel.
func Join(channel string) ([]byte, error) {
	return NewMessage(CmdJoin, channel)
}

// Part builds a command to leave channel.
func Part(channel string) ([]byte, error) {
	return NewMessage(CmdPart, channel)
}

// Quit builds a command that asks the server to terminate the
// connection, optionally showing message to other clients.
func Quit(message string) ([]byte, error) {
	return BuildMessage(CmdQuit, nil, nil, []byte(message))
}

// Ping builds a command to PING the connection. The server normally
// responds with PONG <message>.
func Ping(message string) ([]byte, error) {
	return NewMessage(CmdPing, message)
}

// Pong builds the reply to a PING; reply must match the original
// PING's argument.
func Pong(reply string) ([]byte, error) {
	return NewMessage(CmdPong, reply)
}

// Pass builds the connection password command, sent before NICK/USER.
func Pass(password string) ([]byte, error) {
	return NewMessage(CmdPass, password)
}

// User builds the registration command that specifies username and
// real name. realname may contain spaces; the mode and unused fields
// are sent as "0" and "*" as most networks and clients do.
func User(user, realname string) ([]byte, error) {
	return BuildMessage(CmdUser, []string{user, "0", "*"}, nil, []byte(realname))
}
