package textmetrics

import (
	"bufio"
	"strings"
)

// Section is a run of markdown content under one header.
type Section struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Body  string `json:"body"`
}

// SplitSections parses markdown into a flat list of sections. Content before
// the first header is returned under the title "Introduction" at level 0.
func SplitSections(content string) []Section {
	var sections []Section
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	title := "Introduction"
	level := 0
	var body strings.Builder

	flush := func() {
		if strings.TrimSpace(body.String()) != "" || level > 0 {
			sections = append(sections, Section{Title: title, Level: level, Body: strings.TrimSpace(body.String())})
		}
		body.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if n := headerLevel(trimmed); n > 0 {
			flush()
			title = strings.TrimSpace(trimmed[n:])
			level = n
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()

	return sections
}

// Headers returns the titles of every header section.
func Headers(content string) []string {
	var titles []string
	for _, s := range SplitSections(content) {
		if s.Level > 0 {
			titles = append(titles, s.Title)
		}
	}
	return titles
}

func headerLevel(line string) int {
	level := 0
	for _, char := range line {
		if char != '#' {
			break
		}
		level++
	}
	if level == 0 || level > 6 || len(line) <= level || line[level] != ' ' {
		return 0
	}
	return level
}
