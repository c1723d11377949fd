package stations

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const stopsDataset = `[{"id":"740000001","name":"Stockholm Central","lat":59.33,"lon":18.06,"transportMode":"rail"},` +
	`{"id":"740000002","name":"Uppsala Central","lat":59.86,"lon":17.64,"transportMode":"rail"}]`

func runCLI(t *testing.T, args ...string) (string, int, error) {
	t.Helper()

	var stdout bytes.Buffer
	exitCode := 0

	previousExiter, previousErrWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(code int) { exitCode = code }
	cli.ErrWriter = &bytes.Buffer{}
	t.Cleanup(func() {
		cli.OsExiter = previousExiter
		cli.ErrWriter = previousErrWriter
	})

	app := &cli.App{
		Name:   "stopboard",
		Writer: &stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{RegisterCLI()},
	}

	err := app.Run(append([]string{"stopboard", "stations"}, args...))

	return stdout.String(), exitCode, err
}

func setupWorkspace(t *testing.T) {
	testChdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("public", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("public", "stops.min2.json"), []byte(stopsDataset), 0o644))
}

func TestCLIAddListRemove(t *testing.T) {
	setupWorkspace(t)

	stdout, _, err := runCLI(t, "add", "740000001", "740000002")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added Stockholm Central (740000001)")
	assert.Contains(t, stdout, "Added Uppsala Central (740000002)")

	stdout, _, err = runCLI(t, "add", "740000001")
	require.NoError(t, err)
	assert.Contains(t, stdout, "already a favourite")

	stdout, _, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Stockholm Central")
	assert.Contains(t, stdout, "Uppsala Central")

	stdout, _, err = runCLI(t, "remove", "740000001")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed 740000001")

	store, err := Open("stations.json")
	require.NoError(t, err)
	require.Len(t, store.List(), 1)
	assert.Equal(t, "740000002", store.List()[0].ID)
}

func TestCLIAddUnknownStop(t *testing.T) {
	setupWorkspace(t)

	_, exitCode, err := runCLI(t, "add", "999")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, err.Error(), "unknown stop 999")
}
