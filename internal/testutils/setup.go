// Copyright (C) 2022, Lux Partners Limited, All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/config"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.ResetUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

// CaptureUserOutput routes user facing output into the returned buffer.
func CaptureUserOutput() *bytes.Buffer {
	buf := &bytes.Buffer{}
	ux.ResetUserLog(luxlog.NewNoOpLogger(), buf)
	return buf
}

func SetupTestInTempDir(t *testing.T) *application.App {
	testDir := t.TempDir()

	v := viper.New()
	config.SetDefaults(v)

	app := application.New()
	app.Setup(testDir, luxlog.NewNoOpLogger(), config.NewWithViper(v), nil)
	ux.ResetUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return app
}
