// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"testing"
	"time"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestPrintToUser(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &buf)

	Logger.PrintToUser("Deploying %s", "MBATToken")
	Logger.GreenCheckmarkToUser("done")
	Logger.RedXToUser("failed")
	require.Equal("Deploying MBATToken\n✓ done\n✗ failed\n", buf.String())
}

func TestPrintErrorGoesToStderr(t *testing.T) {
	require := require.New(t)
	var out, errOut bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &out)
	Logger.errWriter = &errOut

	Logger.PrintError("invalid network name %q", "../x")
	require.Empty(out.String())
	require.Equal("\nERROR: invalid network name \"../x\"\n", errOut.String())
}

func TestPrintLineSeparator(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &buf)

	Logger.PrintLineSeparator()
	Logger.PrintLineSeparator("---")
	require.Equal("==========================================\n---\n", buf.String())
}

func TestStepTrackerFailed(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &buf)

	st := NewStepTracker(Logger, time.Hour)
	st.Start("Deploying MBATToken")
	st.Failed("connection refused")
	require.Contains(buf.String(), "✗ Deploying MBATToken (")
	require.Contains(buf.String(), ") - FAILED: connection refused\n")
}

func TestStepTracker(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &buf)

	st := NewStepTracker(Logger, time.Hour)
	st.Start("Deploying MBATToken")
	require.False(st.CheckWarn())
	st.Complete("Success")
	require.Contains(buf.String(), "Deploying MBATToken...\n")
	require.Contains(buf.String(), "✓ Deploying MBATToken (")
	require.Contains(buf.String(), ") - Success\n")

	buf.Reset()
	st = NewStepTracker(Logger, 0)
	st.Start("Waiting")
	time.Sleep(time.Millisecond)
	require.True(st.CheckWarn())
	require.False(st.CheckWarn())
	require.Contains(buf.String(), "Warning: Waiting taking longer than expected")
}

func TestDefaultTable(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ResetUserLog(luxlog.NewNoOpLogger(), &buf)

	table := DefaultTable([]string{"Contract", "Address"})
	require.NoError(table.Append([]string{"MBATToken", "0x5FbDB2315678afecb367f032d93F642f64180aa3"}))
	require.NoError(table.Render())
	require.Contains(buf.String(), "MBATToken")
	require.Contains(buf.String(), "0x5FbDB2315678afecb367f032d93F642f64180aa3")
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "1_000_000_000", ConvertToStringWithThousandSeparator(1_000_000_000))
}
