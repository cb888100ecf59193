// Package docs embeds the user documentation topics served by `bks topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := topicFS.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of the given documentation topics. "*"
// stands for every topic.
func GetTopics(topics ...string) (string, error) {
	resolved := make([]string, 0, len(topics))
	for _, topic := range topics {
		if topic != "*" {
			resolved = append(resolved, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		resolved = append(resolved, all...)
	}

	var b strings.Builder
	for _, topic := range resolved {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of available documentation topics,
// excluding the readme index itself.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(topicFS, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name != "readme" {
			topics = append(topics, name)
		}
	}
	// fs.Glob returns lexical order already.
	return topics, nil
}
