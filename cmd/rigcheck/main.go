/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/rigcheck/rigcheck/pkg/cli"

func main() {
	cli.Execute()
}
