// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "suite"}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestCommandSuiteUsage(t *testing.T) {
	require := require.New(t)

	cmd, buf := newTestCmd()
	require.NoError(CommandSuiteUsage(cmd, nil))
	require.Contains(buf.String(), "Usage:")

	cmd, _ = newTestCmd()
	require.ErrorContains(CommandSuiteUsage(cmd, []string{"bogus"}), `unknown command "bogus"`)
}

func TestExactArgs(t *testing.T) {
	require := require.New(t)

	cmd, buf := newTestCmd()
	require.NoError(ExactArgs(1)(cmd, []string{"a"}))
	require.Empty(buf.String())

	err := ExactArgs(0)(cmd, []string{"a"})
	require.ErrorContains(err, "accepts 0 arg(s), received 1")
	require.Contains(buf.String(), "Usage:")
}
