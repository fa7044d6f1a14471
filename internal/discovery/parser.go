package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

var (
	// @Test (JUnit 4, TestNG) possibly followed by more annotations and modifiers
	annotatedTestPattern = regexp.MustCompile(`@Test\b(?:\([^)]*\))?\s*(?:@\w+(?:\([^)]*\))?\s*)*(?:(?:public|protected|private|static|final|synchronized)\s+)*void\s+(\w+)\s*\(`)
	// JUnit 3 style: public void testSomething()
	namedTestPattern = regexp.MustCompile(`(?m)^\s*public\s+(?:final\s+)?void\s+(test\w*)\s*\(`)
)

// Parser parses Java test sources to extract test methods
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases finds all test methods in a Java source file, sorted and de-duplicated
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	found := make(map[string]bool)
	for _, pattern := range []*regexp.Regexp{annotatedTestPattern, namedTestPattern} {
		for _, match := range pattern.FindAllStringSubmatch(string(content), -1) {
			found[match[1]] = true
		}
	}

	testCases := make([]string, 0, len(found))
	for name := range found {
		testCases = append(testCases, name)
	}
	sort.Strings(testCases)

	return testCases, nil
}
