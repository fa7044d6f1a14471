package classpath

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"surefire/internal/domain"
	"surefire/internal/logging"
)

func TestAssembler_Assemble(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	assembler := NewAssembler(logging.New(&buf, slog.LevelDebug))

	artifacts := []domain.ArtifactRef{
		{GroupID: "junit", ArtifactID: "junit", File: "/repo/junit-4.12.jar"},
		{GroupID: "org.apache.maven", ArtifactID: "maven-artifact", File: "/repo/maven-artifact.jar"},
		{GroupID: "org.testng", ArtifactID: "testng", File: "/repo/testng-5.1.jar"},
		{GroupID: "org.apache.maven.surefire", ArtifactID: "surefire-booter", File: "/repo/surefire-booter.jar"},
		{GroupID: "org.codehaus.plexus", ArtifactID: "plexus-utils", File: "/repo/plexus-utils.jar"},
		{GroupID: "org.codehaus.plexus", ArtifactID: "plexus-container", File: "/repo/plexus-container.jar"},
	}

	entries := assembler.Assemble("/p/target/test-classes", "/p/target/classes",
		[]string{"/repo/b.jar", "/repo/a.jar", "/repo/b.jar"}, artifacts)

	assert.Equal(t, []string{
		"/p/target/test-classes",
		"/p/target/classes",
		"/repo/b.jar",
		"/repo/a.jar",
		"/repo/b.jar",
		"/repo/junit-4.12.jar",
		"/repo/testng-5.1.jar",
		"/repo/surefire-booter.jar",
		"/repo/plexus-utils.jar",
	}, entries)

	logged := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "[DEBUG] Test Classpath :", logged[0])
	assert.Equal(t, "[DEBUG] /p/target/test-classes", logged[1])
	assert.Equal(t, "[DEBUG] Adding to surefire test classpath: /repo/plexus-utils.jar", logged[len(logged)-1])
	assert.Len(t, logged, 10)
}

func TestRule_Matches(t *testing.T) {
	junit := domain.ArtifactRef{GroupID: "junit", ArtifactID: "junit"}
	assert.True(t, Rule{ArtifactID: "junit"}.Matches(junit))
	assert.False(t, Rule{GroupID: "org.testng"}.Matches(junit))
	assert.False(t, Rule{}.Matches(junit))
}
