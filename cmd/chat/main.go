package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"portfolio-be/pkg/autoresponse"
	"portfolio-be/pkg/client"
	"portfolio-be/pkg/livesync"
	"portfolio-be/pkg/portfolio"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	apiURL       = flag.String("api", "http://localhost:3000/api", "API base URL")
	conversation = flag.String("conversation", "", "Resume an existing conversation id")
	verbose      = flag.Bool("v", false, "Log realtime diagnostics")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := zap.NewNop()
	if *verbose {
		log, _ = zap.NewDevelopment()
	}

	api, err := client.New(*apiURL, client.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Visitors see the published portfolio; its chat settings drive the bot.
	content := livesync.NewContentSync(api, "", livesync.WithLogger(log))
	defer content.Close()
	_ = content.Start(ctx)

	settings := portfolio.DefaultContent().Chat
	if doc := content.Content(); doc != nil {
		settings = doc.Chat
	}
	if !settings.Enabled {
		fmt.Println(color.YellowString("The owner has switched chat off."))
		return
	}

	scope := livesync.NewConversationScope(*conversation)
	w := newWidget(os.Stdout)

	messages := livesync.NewMessageSync(api, scope.Get(),
		livesync.WithLogger(log),
		livesync.WithOnChange(w.render),
	)
	w.attach(messages)
	defer messages.Close()

	if err := messages.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Live updates unavailable: %v", err))
	}

	w.banner(settings.ButtonText, messages.ConversationID())
	w.render()

	bot := &botReplier{responder: autoresponse.NewResponder(settings), messages: messages, widget: w}

	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	w.prompt(settings.Placeholder)
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down...")
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if strings.EqualFold(text, "exit") {
				return
			}
			if text == "" {
				w.prompt(settings.Placeholder)
				continue
			}

			if _, err := messages.SendMessage(ctx, text, portfolio.SenderUser); err != nil {
				w.failure(err)
				w.prompt(settings.Placeholder)
				continue
			}
			bot.replyTo(ctx, text)
			w.prompt(settings.Placeholder)
		}
	}
}
