package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pterm/pterm"

	"github.com/Mikey-Burns/Setback/internal/protocol"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "server address")
	match := flag.String("match", "", "match id to join (default: newest open match)")
	flag.Parse()

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	if *match != "" {
		u.RawQuery = url.Values{"match": {*match}}.Encode()
	}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logger.Error("dial", "url", u.String(), "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	pterm.Info.Printfln("Connected to %s", u.String())
	pterm.Info.Println("Commands: " + commandList())
	pterm.Info.Println("Press enter on an empty line to poll for news.")

	prompt := func() (string, error) {
		return pterm.DefaultInteractiveTextInput.WithDefaultText("setback").Show()
	}
	if err := relay(conn, prompt); err != nil {
		logger.Error("relay", "err", err)
		os.Exit(1)
	}
	pterm.Info.Println("Goodbye.")
}

// relay sends each prompted line and prints the replies until the server
// answers EXIT. A failing prompt, such as end of input, stops the relay.
func relay(conn *websocket.Conn, prompt func() (string, error)) error {
	for {
		line, err := prompt()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		msg := protocol.Parse(line)
		reply, err := exchange(conn, msg.String())
		if err != nil {
			return err
		}
		if msg.Command == protocol.NoCommand {
			// Drain everything that happened since the last poll.
			for reply != protocol.ReplyNoCommand && reply != protocol.ReplyExit {
				pterm.Info.Println(reply)
				if reply, err = exchange(conn, string(protocol.NoCommand)); err != nil {
					return err
				}
			}
			if reply == protocol.ReplyNoCommand {
				continue
			}
		}
		if reply == protocol.ReplyExit {
			return nil
		}
		printReply(reply)
	}
}

func exchange(conn *websocket.Conn, line string) (string, error) {
	if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
		return "", fmt.Errorf("writing command: %w", err)
	}
	return read(conn)
}

func read(conn *websocket.Conn) (string, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return "", fmt.Errorf("reading reply: %w", err)
	}
	return string(data), nil
}

func printReply(reply string) {
	if strings.HasSuffix(reply, "!") {
		pterm.Error.Println(reply)
		return
	}
	pterm.Success.Println(reply)
}

func commandList() string {
	names := make([]string, 0, len(protocol.Commands))
	for _, c := range protocol.Commands {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
