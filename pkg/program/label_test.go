package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rpn35/pkg/program"
)

func TestVerifySingleLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "one label", content: "LBL A\nRTN\n"},
		{name: "zero labels pass verification", content: "x2\nRTN\n"},
		{name: "empty document", content: ""},
		{name: "two labels", content: "LBL A\nRTN\nLBL B\nRTN\n", wantErr: program.ErrMultipleLabels},
		{name: "commented label does not count", content: "LBL A\n#LBL B\nRTN\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := program.VerifySingleLabel(program.NewBuffer(testCase.content))
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindLabel(t *testing.T) {
	t.Parallel()

	buf := program.NewBuffer("# prologue\n\nLBL M\nx2\nRTN\n")
	line, letter, err := program.FindLabel(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, line)
	assert.Equal(t, byte('M'), letter)
}

func TestFindLabelMissing(t *testing.T) {
	t.Parallel()

	_, _, err := program.FindLabel(program.NewBuffer("x2\nRTN\n"))
	assert.ErrorIs(t, err, program.ErrLabelNotFound)
}

func TestFindLabelReturnsFirst(t *testing.T) {
	t.Parallel()

	// FindLabel itself does not enforce uniqueness; it reports the first.
	buf := program.NewBuffer("LBL A\nLBL B\n")
	line, letter, err := program.FindLabel(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, line)
	assert.Equal(t, byte('A'), letter)
}
