package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveString_FlagWins(t *testing.T) {
	t.Setenv("MODLIST_TEST_VALUE", "from-env")

	resolved := ResolveString(ResolveStringOptions{
		FlagValue:   "from-flag",
		EnvVar:      "MODLIST_TEST_VALUE",
		ConfigValue: "from-config",
		Default:     "from-default",
	})

	assert.Equal(t, "from-flag", resolved.Value)
	assert.Equal(t, SourceFlag, resolved.Source)
	assert.Equal(t, "from-env", resolved.Shadowed[SourceEnv])
	assert.Equal(t, "from-config", resolved.Shadowed[SourceConfig])
	assert.Equal(t, "from-default", resolved.Shadowed[SourceDefault])
}

func TestResolveString_EnvBeatsConfig(t *testing.T) {
	t.Setenv("MODLIST_TEST_VALUE", "from-env")

	resolved := ResolveString(ResolveStringOptions{
		EnvVar:      "MODLIST_TEST_VALUE",
		ConfigValue: "from-config",
		Default:     "from-default",
	})

	assert.Equal(t, "from-env", resolved.Value)
	assert.Equal(t, SourceEnv, resolved.Source)
	assert.Equal(t, "from-config", resolved.Shadowed[SourceConfig])
}

func TestResolveString_ConfigBeatsDefault(t *testing.T) {
	resolved := ResolveString(ResolveStringOptions{
		EnvVar:      "MODLIST_TEST_VALUE_UNSET",
		ConfigValue: "from-config",
		Default:     "from-default",
	})

	assert.Equal(t, "from-config", resolved.Value)
	assert.Equal(t, SourceConfig, resolved.Source)
	assert.Equal(t, "from-default", resolved.Shadowed[SourceDefault])
}

func TestResolveString_DefaultOnly(t *testing.T) {
	resolved := ResolveString(ResolveStringOptions{
		Default: "from-default",
	})

	assert.Equal(t, "from-default", resolved.Value)
	assert.Equal(t, SourceDefault, resolved.Source)
	assert.Empty(t, resolved.Shadowed)
}

func TestResolveOutputFile_DefaultWhenUnset(t *testing.T) {
	t.Setenv("MODLIST_OUTPUT", "")

	resolved := ResolveOutputFile("", DefaultConfig())

	assert.Equal(t, DefaultOutputFile, resolved.Value)
	assert.Equal(t, SourceDefault, resolved.Source)
}

func TestResolveOutputFile_ConfigValue(t *testing.T) {
	t.Setenv("MODLIST_OUTPUT", "")

	cfg := DefaultConfig()
	cfg.OutputFile = "target/modules.xml"
	resolved := ResolveOutputFile("", cfg)

	assert.Equal(t, "target/modules.xml", resolved.Value)
	assert.Equal(t, SourceConfig, resolved.Source)
}

func TestResolveOutputFile_FlagBeatsEnv(t *testing.T) {
	t.Setenv("MODLIST_OUTPUT", "env.xml")

	resolved := ResolveOutputFile("flag.xml", DefaultConfig())

	assert.Equal(t, "flag.xml", resolved.Value)
	assert.Equal(t, SourceFlag, resolved.Source)
	assert.Equal(t, "env.xml", resolved.Shadowed[SourceEnv])
}

func TestResolveConfigPath_DefaultLocation(t *testing.T) {
	t.Setenv("MODLIST_CONFIG", "")

	resolved, err := ResolveConfigPath("")

	assert.NoError(t, err)
	assert.Equal(t, SourceDefault, resolved.Source)
	assert.Contains(t, resolved.Value, ".modlist")
}
