package portfolio

import "strings"

// Content is the single portfolio document owned by one user.
// Every section is always present once Normalize has run.
type Content struct {
	Hero       Hero         `json:"hero"`
	About      About        `json:"about"`
	Experience []Experience `json:"experience"`
	Skills     Skills       `json:"skills"`
	Projects   []Project    `json:"projects"`
	Contact    Contact      `json:"contact"`
	Chat       ChatSettings `json:"chat"`
}

type Hero struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Email    string `json:"email"`
}

type About struct {
	Paragraphs []string `json:"paragraphs"`
}

type Experience struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

type Skills struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
}

type Project struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Year        string   `json:"year"`
	Url         string   `json:"url"`
}

type Contact struct {
	Email        string `json:"email"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	Social       Social `json:"social"`
}

type Social struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Facebook string `json:"facebook"`
}

// ChatSettings configures the visitor chat widget and its auto-responder.
type ChatSettings struct {
	Enabled          bool               `json:"enabled"`
	ButtonText       string             `json:"buttonText"`
	Placeholder      string             `json:"placeholder"`
	FallbackResponse string             `json:"fallbackResponse"`
	AutoResponses    []AutoResponseRule `json:"autoResponses"`
}

// AutoResponseRule maps any of its triggers to a canned response.
// Trigger order matters: rules and triggers are evaluated first to last.
type AutoResponseRule struct {
	Triggers []string `json:"trigger"`
	Response string   `json:"response"`
}

// Normalize fills every optional part of the document so callers can rely on a
// total structure. It is applied once, where a document enters the system.
func (c *Content) Normalize() {
	if c.About.Paragraphs == nil {
		c.About.Paragraphs = []string{}
	}
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Skills.Frontend == nil {
		c.Skills.Frontend = []string{}
	}
	if c.Skills.Backend == nil {
		c.Skills.Backend = []string{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		if c.Projects[i].Tags == nil {
			c.Projects[i].Tags = []string{}
		}
	}

	chat := &c.Chat
	if chat.AutoResponses == nil {
		chat.AutoResponses = []AutoResponseRule{}
	}
	for i := range chat.AutoResponses {
		if chat.AutoResponses[i].Triggers == nil {
			chat.AutoResponses[i].Triggers = []string{}
		}
	}
	if strings.TrimSpace(chat.ButtonText) == "" {
		chat.ButtonText = DefaultButtonText
	}
	if strings.TrimSpace(chat.Placeholder) == "" {
		chat.Placeholder = DefaultPlaceholder
	}
}

// Clone returns a deep copy so the caller can mutate it freely.
func (c Content) Clone() Content {
	out := c
	out.About.Paragraphs = cloneStrings(c.About.Paragraphs)
	if c.Experience != nil {
		out.Experience = make([]Experience, len(c.Experience))
		copy(out.Experience, c.Experience)
	}
	out.Skills.Frontend = cloneStrings(c.Skills.Frontend)
	out.Skills.Backend = cloneStrings(c.Skills.Backend)

	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			p.Tags = cloneStrings(p.Tags)
			out.Projects[i] = p
		}
	}
	if c.Chat.AutoResponses != nil {
		out.Chat.AutoResponses = make([]AutoResponseRule, len(c.Chat.AutoResponses))
		for i, r := range c.Chat.AutoResponses {
			r.Triggers = cloneStrings(r.Triggers)
			out.Chat.AutoResponses[i] = r
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
