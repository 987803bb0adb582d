package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/shelfhelp/internal/export"
)

func TestShouldAutoJSON(t *testing.T) {
	assert.True(t, shouldAutoJSON([]string{"ask", "milk"}, false))
	assert.False(t, shouldAutoJSON([]string{"ask", "milk", "--json"}, false))
	assert.False(t, shouldAutoJSON([]string{"completion", "zsh"}, false))
	assert.False(t, shouldAutoJSON([]string{"--help"}, false))
	assert.False(t, shouldAutoJSON([]string{"ask", "milk"}, true))
	assert.True(t, shouldAutoJSON([]string{"ask", "--", "--help"}, false))
}

func TestWithFlag_InsertsBeforeDoubleDash(t *testing.T) {
	assert.Equal(t, []string{"ask", "milk", "--json"}, withFlag([]string{"ask", "milk"}, "--json"))
	assert.Equal(t, []string{"ask", "--json", "--", "-x"}, withFlag([]string{"ask", "--", "-x"}, "--json"))
}

func TestFirstCommand_SkipsFlagValues(t *testing.T) {
	assert.Equal(t, "catalog", firstCommand([]string{"--config", "store.yaml", "catalog"}))
	assert.Equal(t, "export", firstCommand([]string{"-c", "store.yaml", "export", "milk"}))
	assert.Equal(t, "", firstCommand([]string{"--json"}))
}

func TestPrintQuickStart_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := printQuickStart(&buf, true)
	require.NoError(t, err)

	var payload quickStartJSON
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	assert.Equal(t, "shelfhelp", payload.Name)
	assert.NotEmpty(t, payload.Usage)
	assert.Len(t, payload.Examples, 3)
}

func TestPrintCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCLIErrorJSON(&buf, classifyCLIError(invalidArgsError("bad flag", "shelfhelp ask milk")))
	require.NoError(t, err)

	var payload map[string]any
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	errorObject, ok := payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGS", errorObject["code"])
	assert.Equal(t, "bad flag", errorObject["message"])
	assert.EqualValues(t, ExitInvalidArgs, errorObject["exitCode"])
}

func TestClassifyCLIError_Taxonomy(t *testing.T) {
	tests := []struct {
		err      error
		code     string
		exitCode int
	}{
		{emptyListError("export"), "EMPTY_LIST", ExitEmptyList},
		{fmt.Errorf("saving: %w", export.ErrEmptyList), "EMPTY_LIST", ExitEmptyList},
		{configError(fmt.Errorf("boom")), "CONFIG_ERROR", ExitInvalidArgs},
		{ioError("writing report", fmt.Errorf("disk full")), "IO_ERROR", ExitIO},
		{fmt.Errorf(`unknown command "x" for "shelfhelp"`), "INVALID_ARGS", ExitInvalidArgs},
		{fmt.Errorf("flag needs an argument: --format"), "INVALID_ARGS", ExitInvalidArgs},
		{fmt.Errorf(`invalid argument "maybe" for "--json" flag: strconv.ParseBool: parsing "maybe": invalid syntax`), "INVALID_ARGS", ExitInvalidArgs},
		{fmt.Errorf(`accepts 1 arg(s), received 2`), "INTERNAL_ERROR", ExitInternal},
		{fmt.Errorf("something odd"), "INTERNAL_ERROR", ExitInternal},
	}
	for _, tt := range tests {
		got := classifyCLIError(tt.err)
		assert.Equal(t, tt.code, got.Code, tt.err.Error())
		assert.Equal(t, tt.exitCode, got.ExitCode, tt.err.Error())
	}
}
