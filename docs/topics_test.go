package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}
	found := false
	for _, topic := range topics {
		if topic == "readme" {
			found = true
		}
	}
	if !found {
		t.Errorf("readme topic missing from %v", topics)
	}
}

func TestGetTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic accepted an unknown topic")
	}

	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*): %v", err)
	}
	single, err := GetTopic("averaging")
	if err != nil {
		t.Fatalf("GetTopic(averaging): %v", err)
	}
	if !strings.Contains(all, single) {
		t.Error("the * topic does not contain the averaging topic")
	}
}

// Every topic must be well-formed markdown opening with exactly one level-1
// heading, since topics are concatenated and rendered together.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic: %v", err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var h1 int
			err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("walking markdown: %v", err)
			}
			if h1 != 1 {
				t.Errorf("topic has %d level-1 headings, want exactly 1", h1)
			}
			if !strings.HasPrefix(content, "# ") {
				t.Error("topic does not open with its title")
			}
		})
	}
}
