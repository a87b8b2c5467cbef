// FILE: bouquet/config/discovery_test.go
package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessConfigFrom(t *testing.T) {
	noEnv := func(string) (string, bool) { return "", false }

	t.Run("LongFlagWithEquals", func(t *testing.T) {
		v := ProcessConfigFrom([]string{"serve", "--eds.config=/a/%s,/b/%s"}, noEnv)
		assert.Equal(t, "/a/%s,/b/%s", v)
	})

	t.Run("LongFlagWithSeparateValue", func(t *testing.T) {
		v := ProcessConfigFrom([]string{"--eds.config", "/a/%s"}, noEnv)
		assert.Equal(t, "/a/%s", v)
	})

	t.Run("SystemPropertyStyle", func(t *testing.T) {
		v := ProcessConfigFrom([]string{"-Deds.config=/a/%s"}, noEnv)
		assert.Equal(t, "/a/%s", v)
	})

	t.Run("ArgumentsAfterTerminatorIgnored", func(t *testing.T) {
		v := ProcessConfigFrom([]string{"--", "--eds.config=/a/%s"}, noEnv)
		assert.Empty(t, v)
	})

	t.Run("ArgumentsWinOverEnvironment", func(t *testing.T) {
		env := func(key string) (string, bool) { return "/env/%s", key == "EDS_CONFIG" }
		v := ProcessConfigFrom([]string{"--eds.config=/arg/%s"}, env)
		assert.Equal(t, "/arg/%s", v)
	})

	t.Run("EnvironmentUppercase", func(t *testing.T) {
		t.Setenv("EDS_CONFIG", "/env/%s")
		assert.Equal(t, "/env/%s", ProcessConfigFrom(nil, os.LookupEnv))
	})

	t.Run("EnvironmentLiteralKey", func(t *testing.T) {
		env := func(key string) (string, bool) { return "/literal/%s", key == "eds.config" }
		assert.Equal(t, "/literal/%s", ProcessConfigFrom(nil, env))
	})

	t.Run("Unset", func(t *testing.T) {
		assert.Empty(t, ProcessConfigFrom([]string{"--other=1"}, noEnv))
		assert.Empty(t, ProcessConfigFrom(nil, nil))
	})
}

func TestSplitLocations(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitLocations("A,B"))
	assert.Equal(t, []string{"A", "B"}, SplitLocations(" A , ,B,"))
	assert.Nil(t, SplitLocations(""))
}

func TestComposePathsPrecedence(t *testing.T) {
	paths := composePaths("A,B", []string{"C"})

	expected := append([]string{"A", "B", "C"}, DefaultPaths()...)
	assert.Equal(t, expected, paths)
}

func TestComposePathsKeepsDuplicates(t *testing.T) {
	paths := composePaths("./%s", []string{"./%s"})

	assert.Equal(t, "./%s", paths[0])
	assert.Equal(t, "./%s", paths[1])
	assert.Equal(t, "./%s", paths[len(paths)-1])
	assert.Len(t, paths, 2+len(DefaultPaths()))
}

func TestDefaultPaths(t *testing.T) {
	original := AppName
	t.Cleanup(func() { AppName = original })

	assert.Equal(t, []string{
		"/configs/%s",
		"/etc/jbouquet/configs/%s",
		"/etc/jbouquet/configuration/%s",
		"../etc/%s",
		"./%s",
	}, DefaultPaths())

	AppName = "myapp"
	assert.Contains(t, DefaultPaths(), "/etc/myapp/configs/%s")
}
