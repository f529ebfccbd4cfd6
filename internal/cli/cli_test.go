package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed", "create-admin"}, names)

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup(addrFlag))

	admin, _, err := root.Find([]string{"create-admin"})
	require.NoError(t, err)
	for _, flag := range []string{emailFlag, passwordFlag, nameFlag} {
		assert.NotNil(t, admin.Flags().Lookup(flag), flag)
	}
	assert.Equal(t, "Administrator", admin.Flags().Lookup(nameFlag).DefValue)
}

func TestCreateAdminRequiresEmail(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"create-admin", "--password", "x"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email is required")
}
