/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the rigcheck command-line interface.
//
// # Commands
//
// verify - Verify builds:
//
//	rigcheck verify gaming-rig
//	rigcheck verify -b workstation -b compact-build --format table
//	rigcheck verify --lang de --fail-on-violation budget-build
//
// Each build gets a report with completeness violations, compatibility
// violations and optimality warnings. Several builds are verified
// concurrently; reports keep the order the ids were given in.
//
// builds - List build ids in the store:
//
//	rigcheck builds --format json
//
// serve - Run the HTTP API:
//
//	rigcheck serve --port 9090
//
// # Global Flags
//
//	--config, -c   YAML configuration file (also RIGCHECK_CONFIG)
//	--log-level    Log verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	RIGCHECK_CONFIG        Configuration file path
//	RIGCHECK_DATA          Store document path
//	RIGCHECK_LANGUAGE      Message language
//	RIGCHECK_LOG_LEVEL     Log verbosity
//	RIGCHECK_SERVER_*      Server settings, e.g. RIGCHECK_SERVER_PORT
//	LOG_LEVEL              Log verbosity when --log-level is not given
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown build, execution failure)
//	2  Context canceled or timeout
//	3  A build failed verification and --fail-on-violation was set
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/rigcheck/rigcheck/pkg/cli.version=1.0.0'"
package cli
