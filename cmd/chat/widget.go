package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"portfolio-be/pkg/autoresponse"
	"portfolio-be/pkg/livesync"
	"portfolio-be/pkg/portfolio"

	"github.com/fatih/color"
)

var (
	userLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
	botLabel   = color.New(color.FgCyan, color.Bold).SprintFunc()
	adminLabel = color.New(color.FgMagenta, color.Bold).SprintFunc()
	dim        = color.New(color.Faint).SprintFunc()
)

// widget prints each stored message once, in list order.
type widget struct {
	out io.Writer

	mu      sync.Mutex
	source  *livesync.MessageSync
	printed map[string]struct{}
}

func newWidget(out io.Writer) *widget {
	return &widget{out: out, printed: map[string]struct{}{}}
}

func (w *widget) attach(s *livesync.MessageSync) {
	w.mu.Lock()
	w.source = s
	w.mu.Unlock()
}

func (w *widget) banner(title, conversationID string) {
	fmt.Fprintln(w.out, color.New(color.FgGreen, color.Bold).Sprint(title))
	fmt.Fprintln(w.out, dim("conversation "+conversationID+" · type 'exit' to quit"))
	fmt.Fprintln(w.out)
}

func (w *widget) prompt(placeholder string) {
	fmt.Fprint(w.out, dim(placeholder+" › "))
}

func (w *widget) failure(err error) {
	fmt.Fprintln(w.out, color.RedString("Message not sent: %v", err))
}

func (w *widget) typing() {
	fmt.Fprintln(w.out, dim("typing..."))
}

// render prints messages that reached the store and were not shown yet.
func (w *widget) render() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.source == nil {
		return
	}

	for _, m := range w.source.Messages() {
		if livesync.IsProvisional(m.Id) {
			continue
		}
		if _, ok := w.printed[m.Id]; ok {
			continue
		}
		w.printed[m.Id] = struct{}{}
		fmt.Fprintf(w.out, "%s %s\n", label(m.Sender), m.Message)
	}
}

func label(s portfolio.Sender) string {
	switch s {
	case portfolio.SenderBot:
		return botLabel("Bot:")
	case portfolio.SenderAdmin:
		return adminLabel("Owner:")
	default:
		return userLabel("You:")
	}
}

type botReplier struct {
	responder *autoresponse.Responder
	messages  *livesync.MessageSync
	widget    *widget
	delay     func() time.Duration
}

// typingDelay is between one and two seconds.
func typingDelay() time.Duration {
	return time.Second + rand.N(time.Second)
}

// replyTo answers a visitor message after a short typing pause.
func (b *botReplier) replyTo(ctx context.Context, text string) {
	b.widget.render()
	b.widget.typing()

	delay := typingDelay
	if b.delay != nil {
		delay = b.delay
	}
	select {
	case <-ctx.Done():
		return
	case <-time.After(delay()):
	}

	if _, err := b.messages.SendMessage(ctx, b.responder.Reply(text), portfolio.SenderBot); err != nil {
		b.widget.failure(err)
	}
	b.widget.render()
}
