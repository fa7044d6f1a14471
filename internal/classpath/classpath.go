// Package classpath assembles the ordered test classpath handed to the execution engine.
package classpath

import (
	"log/slog"
	"path/filepath"

	"surefire/internal/domain"
)

// Rule selects plugin artifacts by group or artifact identity
type Rule struct {
	GroupID    string
	ArtifactID string
}

// Matches reports whether the rule's non-empty field equals the artifact's
func (r Rule) Matches(a domain.ArtifactRef) bool {
	if r.ArtifactID != "" && r.ArtifactID != a.ArtifactID {
		return false
	}
	if r.GroupID != "" && r.GroupID != a.GroupID {
		return false
	}
	return r.ArtifactID != "" || r.GroupID != ""
}

// PluginArtifactRules are the plugin artifacts the test runners need on the test classpath.
// The engine's other dependencies stay out so that they cannot leak into the tests.
var PluginArtifactRules = []Rule{
	{ArtifactID: "junit"},
	{GroupID: "org.testng"},
	{GroupID: "org.apache.maven.surefire"},
	{ArtifactID: "plexus-utils"},
}

// Assembler builds test classpaths
type Assembler struct {
	log   *slog.Logger
	rules []Rule
}

// NewAssembler creates an Assembler using PluginArtifactRules
func NewAssembler(log *slog.Logger) *Assembler {
	return &Assembler{log: log, rules: PluginArtifactRules}
}

// Assemble returns testOutputDir, mainOutputDir, the dependencies in order and then the
// allowed plugin artifacts in order. Duplicates are kept: the first occurrence wins
// when classes are loaded. Every path is logged as it is added.
func (a *Assembler) Assemble(testOutputDir, mainOutputDir string, dependencies []string, artifacts []domain.ArtifactRef) []string {
	entries := make([]string, 0, 2+len(dependencies)+len(artifacts))

	a.log.Debug("Test Classpath :")

	add := func(path string) {
		a.log.Debug(path)
		entries = append(entries, path)
	}
	add(testOutputDir)
	add(mainOutputDir)
	for _, dep := range dependencies {
		add(dep)
	}

	for _, artifact := range artifacts {
		if !a.allowed(artifact) {
			continue
		}
		path := artifact.File
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		a.log.Debug("Adding to surefire test classpath: " + path)
		entries = append(entries, path)
	}

	return entries
}

func (a *Assembler) allowed(artifact domain.ArtifactRef) bool {
	for _, rule := range a.rules {
		if rule.Matches(artifact) {
			return true
		}
	}
	return false
}
