package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation stays in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (except readme.md) is listed in readme.md.
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("topic listed in readme cannot be loaded: %v", err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopics_ValidMarkdown(t *testing.T) {
	// Every topic must parse as markdown and start with a heading.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	md := goldmark.DefaultParser()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			doc := md.Parse(text.NewReader([]byte(content)))
			first := doc.FirstChild()
			if first == nil || first.Kind() != ast.KindHeading {
				t.Errorf("topic %q does not start with a heading", topic)
			}
		})
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Errorf("GetTopic should fail on an unknown topic")
	}
}

func TestGetTopic_Star(t *testing.T) {
	doc, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*): %v", err)
	}
	for _, topic := range []string{"commands", "store", "interchange"} {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(doc, content) {
			t.Errorf("GetTopic(*) does not contain topic %q", topic)
		}
	}
}
