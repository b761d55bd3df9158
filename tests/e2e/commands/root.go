// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os"
	"os/exec"

	"github.com/mbattoken/mbat-cli/tests/e2e/utils"
)

// run executes the CLI with HOME pointed at homeDir so deployment records
// stay out of the user's ~/.mbat.
/* #nosec G204 */
func run(homeDir string, args ...string) (string, error) {
	args = append(args, "--non-interactive")
	cmd := exec.Command(utils.CLIPath(CLIBinary), args...)
	cmd.Env = append(os.Environ(), "HOME="+homeDir, "CI=1")
	output, err := cmd.CombinedOutput()
	if err != nil {
		utils.PrintStdErr(err)
	}
	return string(output), err
}
