package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"fashionchat/internal/chatclient"
)

var cli struct {
	URL string `name:"url" env:"CHAT_API_URL" default:"http://localhost:8000" help:"Base URL of the chat service."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("fashionchat"),
		kong.Description("Terminal front end for the fashion chatbot."),
	)

	client := chatclient.NewClient(cli.URL)
	conv := chatclient.NewConversation(client)

	ctx := context.Background()

	// One probe per session; its outcome is the first transcript entry.
	conv.CheckConnection(ctx)
	printLast(conv)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}

		text := scanner.Text()
		if cmd := strings.TrimSpace(text); cmd == "exit" || cmd == "quit" {
			break
		}

		if !conv.Send(ctx, text) {
			continue
		}
		printLast(conv)
	}
}

func printLast(conv *chatclient.Conversation) {
	if msg, ok := conv.Last(); ok {
		fmt.Printf("assistant> %s\n", msg.Content)
	}
}
