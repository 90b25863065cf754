// Package autoresponse picks the canned reply the chat bot sends to a visitor.
package autoresponse

import (
	"strings"

	"portfolio-be/pkg/portfolio"
)

// DefaultFallback is used when neither a rule nor a configured fallback applies.
const DefaultFallback = "That's interesting! I'm always eager to learn and discuss new topics. Feel free to ask me about my projects, skills, or experiences in tech!"

// Match returns the response of the first rule with a trigger contained in the
// utterance, case-insensitively. Rules and their triggers are tried in list order,
// so the earliest overlapping trigger wins. Blank triggers never match.
func Match(utterance string, rules []portfolio.AutoResponseRule, fallback string) string {
	text := strings.ToLower(utterance)

	for _, rule := range rules {
		for _, trigger := range rule.Triggers {
			t := strings.ToLower(strings.TrimSpace(trigger))
			if t == "" {
				continue
			}
			if strings.Contains(text, t) {
				return rule.Response
			}
		}
	}

	if strings.TrimSpace(fallback) == "" {
		return DefaultFallback
	}
	return fallback
}

// Responder answers visitors with the rules of one chat configuration.
type Responder struct {
	settings portfolio.ChatSettings
}

func NewResponder(settings portfolio.ChatSettings) *Responder {
	return &Responder{settings: settings}
}

// Enabled reports whether the owner switched the chat widget on.
func (r *Responder) Enabled() bool {
	return r.settings.Enabled
}

func (r *Responder) Reply(utterance string) string {
	return Match(utterance, r.settings.AutoResponses, r.settings.FallbackResponse)
}
