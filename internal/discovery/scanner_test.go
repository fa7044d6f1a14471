package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surefire/internal/domain"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, file := range files {
		full := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("test"), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"com/acme/UserTest.class",
		"com/acme/UserTest$Fixture.class",
		"com/acme/AbstractServiceTest.class",
		"com/acme/billing/PaymentTestCase.class",
		"com/acme/billing/InvoiceHelper.class",
		"TestSmoke.class",
		"TestData.properties",
		".hidden/SecretTest.class",
	)

	scanner := NewScanner()

	t.Run("default patterns", func(t *testing.T) {
		sel := Resolve(nil, nil, nil, nil)
		classes, err := scanner.Scan(sel.Batteries(root)[0])
		require.NoError(t, err)
		assert.Equal(t, []string{"TestSmoke", "com.acme.UserTest", "com.acme.billing.PaymentTestCase"}, classes)
	})

	t.Run("named filter", func(t *testing.T) {
		filter := "UserTest"
		sel := Resolve(&filter, nil, nil, nil)
		classes, err := scanner.Scan(sel.Batteries(root)[0])
		require.NoError(t, err)
		assert.Equal(t, []string{"com.acme.UserTest"}, classes)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan(domain.Battery{Directory: "/non/existent/path"})
		assert.Error(t, err)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(domain.Battery{Directory: filepath.Join(root, "TestSmoke.class")})
		assert.Error(t, err)
	})
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "com.acme.FooTest", ClassName("com/acme/FooTest.class"))
	assert.Equal(t, "FooTest", ClassName("FooTest.class"))
	assert.Equal(t, filepath.Join("src", "com", "acme", "FooTest.java"), SourceFile("src", "com.acme.FooTest"))
}
