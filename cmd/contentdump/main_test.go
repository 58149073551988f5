package main

import (
	"bytes"
	"compress/zlib"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDump(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("q 1 0 0 1 10 20 cm Q")

	require.NoError(t, run(config{}, in, &out, &errOut))
	assert.Equal(t, "LocalGraphicsState\n  Operation 1 0 0 1 10 20 cm\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunRewriteWithFilter(t *testing.T) {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	zw.Write([]byte("BT (Hi) Tj ET"))
	zw.Close()

	var out, errOut bytes.Buffer
	cfg := config{filters: []string{"Fl"}, rewrite: true}
	require.NoError(t, run(cfg, &compressed, &out, &errOut))
	assert.Equal(t, "BT\n(Hi) Tj\nET\n", out.String())
}

func TestRunReportsSyntaxError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{}, strings.NewReader("(unterminated Tj"), &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 16")
	assert.Contains(t, err.Error(), "opened at offset 0")
	assert.Contains(t, errOut.String(), "parse failed")
}

func TestRootCommandArgs(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("/Im1 Do"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "XObject /Im1 Do\n", out.String())
}
