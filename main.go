// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/oleamind/farm-service/cmd"

func main() {
	cmd.Execute()
}
