// Package frontmatter splits and composes markdown documents with a
// leading "---"-delimited YAML metadata block, the format VS Write uses
// for section files.
package frontmatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Split separates a document into its frontmatter block and body. A
// document whose first line is not "---" has no frontmatter; the whole
// input is returned as body.
func Split(s string) (frontmatter, body string, has bool, err error) {
	br := bufio.NewReader(strings.NewReader(s))

	first, ferr := br.ReadString('\n')
	if ferr != nil && !errors.Is(ferr, io.EOF) {
		return "", "", false, fmt.Errorf("read first line: %w", ferr)
	}
	first = strings.TrimRight(first, "\r\n")
	if strings.TrimSpace(first) != "---" {
		return "", s, false, nil
	}

	var fmLines []string
	foundEnd := false
	for {
		line, lerr := br.ReadString('\n')
		if lerr != nil && !errors.Is(lerr, io.EOF) {
			return "", "", false, fmt.Errorf("read frontmatter line: %w", lerr)
		}
		lineTrim := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(lineTrim) == "---" {
			foundEnd = true
			break
		}
		fmLines = append(fmLines, lineTrim)
		if errors.Is(lerr, io.EOF) {
			break
		}
	}

	if !foundEnd {
		return "", "", false, errors.New("unterminated frontmatter (missing closing ---)")
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return "", "", false, fmt.Errorf("read body: %w", err)
	}

	return strings.Join(fmLines, "\n"), string(rest), true, nil
}

// Compose builds a document from a frontmatter block and a body.
func Compose(frontmatter, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(strings.TrimRight(frontmatter, "\n"))
	b.WriteString("\n---\n")
	b.WriteString(body)
	return b.String()
}
