// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/cli-commander/cli-commander/cmd/cmdr"

func main() {
	cmd.Execute()
}
