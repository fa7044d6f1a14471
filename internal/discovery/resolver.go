package discovery

import (
	"os"
	"strings"

	"surefire/internal/domain"
	"surefire/internal/tokens"
)

// SourceExtension is the extension placed on includes built from a test-name filter.
// It is a wildcard so that both sources and compiled classes match.
const SourceExtension = "*"

// DefaultIncludes are used when no include pattern is configured
var DefaultIncludes = []string{"**/Test*.*", "**/*Test.*", "**/*TestCase.*"}

// DefaultExcludes are used when no exclude pattern is configured. The last one drops nested classes.
var DefaultExcludes = []string{"**/Abstract*Test.*", "**/Abstract*TestCase.*", "**/*$*"}

// Resolve decides which tests are in scope. A test-name filter wins over everything,
// then non-empty suite files, then the include/exclude lists with their defaults.
// Suite files that do not exist are skipped silently; if none is left the selection
// has no batteries. It never fails.
func Resolve(testFilter *string, includes, excludes, suiteFiles []string) domain.Selection {
	if testFilter != nil {
		// FooTest -> **/FooTest.*
		names := tokens.Split(*testFilter, ",", -1)
		filtered := make([]string, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			filtered = append(filtered, "**/"+name+"."+SourceExtension)
		}
		return domain.Selection{
			Mode:     domain.NamedFilter,
			Includes: filtered,
			Excludes: []string{},
		}
	}

	if len(suiteFiles) > 0 {
		existing := make([]string, 0, len(suiteFiles))
		for _, file := range suiteFiles {
			if _, err := os.Stat(file); err == nil {
				existing = append(existing, file)
			}
		}
		return domain.Selection{Mode: domain.SuiteDescriptors, SuiteFiles: existing}
	}

	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	if len(excludes) == 0 {
		excludes = DefaultExcludes
	}
	return domain.Selection{
		Mode:     domain.IncludeExclude,
		Includes: append([]string(nil), includes...),
		Excludes: append([]string(nil), excludes...),
	}
}
