package konvent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDoesNotMutateBase(t *testing.T) {
	java, err := ConventionByName("java")
	require.NoError(t, err)
	spotless, err := ConventionByName("spotless")
	require.NoError(t, err)

	base := Apply(BuildConfig{}, java)

	basePlugins := append([]string{}, base.Plugins...)
	baseConstants := append([]ConstantDef{}, base.Constants...)
	baseConventions := append([]string{}, base.Conventions...)

	derived := Apply(base, spotless)

	assert.Equal(t, basePlugins, base.Plugins)
	assert.Equal(t, baseConstants, base.Constants)
	assert.Equal(t, baseConventions, base.Conventions)

	assert.Greater(t, len(derived.Constants), len(base.Constants))
	assert.Contains(t, derived.Conventions, "spotless")
}

func TestApplyOverwritesToolchain(t *testing.T) {
	java, err := ConventionByName("java")
	require.NoError(t, err)

	res := Apply(BuildConfig{}, java)
	assert.Equal(t, 21, res.Toolchain.JavaVersion)

	spotless, err := ConventionByName("spotless")
	require.NoError(t, err)

	// spotless carries no toolchain, the setting must survive
	res = Apply(res, spotless)
	assert.Equal(t, 21, res.Toolchain.JavaVersion)
}

func TestComposeConfigUnknownConventionFails(t *testing.T) {
	_, err := ComposeConfig([]string{"java", "doesnotexist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesnotexist")
}

func TestComposeConfigDeduplicates(t *testing.T) {
	once, err := ComposeConfig([]string{"java"})
	require.NoError(t, err)

	twice, err := ComposeConfig([]string{"java", "java"})
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestComposeConfigPreservesOrder(t *testing.T) {
	res, err := ComposeConfig([]string{"spotless", "java"})
	require.NoError(t, err)

	require.Equal(t, []string{"spotless", "java"}, res.Conventions)

	// constants of the first applied convention come first
	require.NotEmpty(t, res.Constants)
	assert.Equal(t, "SPOTLESS", res.Constants[0].Name)
}

func TestConstantNameDerivation(t *testing.T) {
	assert.Equal(t, "SPRING_BOOT", constant("spring-boot").Name)
	assert.Equal(t, "PALANTIR_JAVA_FORMAT", constant("palantir-java-format").Name)
	assert.Equal(t, "LOMBOK", constant("lombok").Name)
}

func TestConventionsAreSortedByName(t *testing.T) {
	convs := Conventions()
	require.NotEmpty(t, convs)

	for i := 1; i < len(convs); i++ {
		assert.Less(t, convs[i-1].Name, convs[i].Name)
	}
}
