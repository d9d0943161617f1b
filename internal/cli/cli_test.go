package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rpn35/internal/cli"
	"github.com/yaklabco/rpn35/pkg/nav"
	"github.com/yaklabco/rpn35/pkg/program"
)

const sampleProgram = "# demo\nLBL A\nx2\n\nyx\nGTO A002\nRTN\n"

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.rpn")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestExportCommand(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	out, err := runCommand(t, "export", path)
	require.NoError(t, err)
	assert.Equal(t, "# demo\nA001 x2\nA002 yx\nA003 GTO A002\nA004 RTN\n", out)
}

func TestExportCommandToFile(t *testing.T) {
	path := writeProgram(t, "LBL A\nx2\nRTN\n")
	outPath := filepath.Join(t.TempDir(), "out.35s")

	_, err := runCommand(t, "export", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "A001 x2\nA002 RTN\n", string(data))
}

func TestExportCommandMultipleLabels(t *testing.T) {
	path := writeProgram(t, "LBL A\nRTN\nLBL B\nRTN\n")

	_, err := runCommand(t, "export", path)
	assert.ErrorIs(t, err, program.ErrMultipleLabels)
	assert.Equal(t, cli.ExitOperationFailed, cli.ExitCode(err))
}

func TestImportCommand(t *testing.T) {
	path := writeProgram(t, "A001 x^2\nA002 y^x;power\nA003 +\n")

	out, err := runCommand(t, "import", path)
	require.NoError(t, err)
	assert.Equal(t, "x2\n#power\nyx\n+\n", out)
}

func TestMemCommand(t *testing.T) {
	path := writeProgram(t, "LBL A\nRTN\n5\n")

	out, err := runCommand(t, "mem", path, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "41")
}

func TestReportCommand(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	out, err := runCommand(t, "report", path, "--line", "5")
	require.NoError(t, err)
	assert.Equal(t, "A002\n", out)
}

func TestReportCommandOnComment(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	_, err := runCommand(t, "report", path, "--line", "1")
	assert.ErrorIs(t, err, nav.ErrUnindexedLine)
}

func TestGotoCommand(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	out, err := runCommand(t, "goto", path, "A002")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestGotoCommandBadSpec(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	_, err := runCommand(t, "goto", path, "12A")
	assert.ErrorIs(t, err, nav.ErrInvalidLineSpec)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestJumpCommand(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	out, err := runCommand(t, "jump", path, "--line", "6")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestJumpCommandNotAJump(t *testing.T) {
	path := writeProgram(t, sampleProgram)

	_, err := runCommand(t, "jump", path, "--line", "3")
	assert.ErrorIs(t, err, nav.ErrInvalidInstruction)
}

func TestMissingFileExitCode(t *testing.T) {
	_, err := runCommand(t, "export", filepath.Join(t.TempDir(), "nope.rpn"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestExitCodeSuccess(t *testing.T) {
	t.Parallel()
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
}
