// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

The CLI prompts only when stdin is a TTY. When stdin is piped, or when
MBAT_NON_INTERACTIVE or CI are truthy, or --non-interactive is passed, every
prompt fails fast with ErrNonInteractive so scripts learn which flag is
missing instead of hanging.
*/
package prompts
