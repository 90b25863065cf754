package autoresponse

import (
	"testing"

	"portfolio-be/pkg/portfolio"
)

func rule(response string, triggers ...string) portfolio.AutoResponseRule {
	return portfolio.AutoResponseRule{Triggers: triggers, Response: response}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		rules     []portfolio.AutoResponseRule
		fallback  string
		want      string
	}{
		{
			name:      "first rule wins over later overlapping rule",
			utterance: "hi there",
			rules:     []portfolio.AutoResponseRule{rule("A", "hi"), rule("B", "hi", "hello")},
			want:      "A",
		},
		{
			name:      "empty rules fall back",
			utterance: "anything",
			rules:     nil,
			fallback:  "F",
			want:      "F",
		},
		{
			name:      "case insensitive substring",
			utterance: "What are your SKILLS?",
			rules:     []portfolio.AutoResponseRule{rule("X", "skills", "tech stack")},
			want:      "X",
		},
		{
			name:      "trigger with upper case letters",
			utterance: "show me the tech stack",
			rules:     []portfolio.AutoResponseRule{rule("X", "Tech Stack")},
			want:      "X",
		},
		{
			name:      "trigger order inside a rule does not change the winner",
			utterance: "hello",
			rules:     []portfolio.AutoResponseRule{rule("A", "bye", "hello"), rule("B", "hello")},
			want:      "A",
		},
		{
			name:      "blank triggers are skipped",
			utterance: "nothing relevant",
			rules:     []portfolio.AutoResponseRule{rule("A", "", "   "), rule("B", "relevant")},
			want:      "B",
		},
		{
			name:      "blank fallback uses default",
			utterance: "zzz",
			rules:     []portfolio.AutoResponseRule{rule("A", "hello")},
			fallback:  "  ",
			want:      DefaultFallback,
		},
		{
			name:      "no match uses configured fallback",
			utterance: "zzz",
			rules:     []portfolio.AutoResponseRule{rule("A", "hello")},
			fallback:  "F",
			want:      "F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.utterance, tt.rules, tt.fallback)
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	rules := portfolio.DefaultRules()
	first := Match("hey, tell me about your projects", rules, "")
	for i := 0; i < 50; i++ {
		if got := Match("hey, tell me about your projects", rules, ""); got != first {
			t.Fatalf("run %d returned %q, want %q", i, got, first)
		}
	}
	// "hey" belongs to the first default rule
	if first != rules[0].Response {
		t.Errorf("got %q, want greeting response", first)
	}
}

func TestResponderUsesSettings(t *testing.T) {
	r := NewResponder(portfolio.ChatSettings{
		Enabled:          true,
		FallbackResponse: "fallback",
		AutoResponses:    []portfolio.AutoResponseRule{rule("contact me", "email")},
	})

	if !r.Enabled() {
		t.Error("Enabled() = false, want true")
	}
	if got := r.Reply("what is your EMAIL"); got != "contact me" {
		t.Errorf("Reply = %q, want %q", got, "contact me")
	}
	if got := r.Reply("weather?"); got != "fallback" {
		t.Errorf("Reply = %q, want %q", got, "fallback")
	}
}
