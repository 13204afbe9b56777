// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	assert.NoError(t, parseArgs(nil))
	assert.ErrorIs(t, parseArgs([]string{"-h"}), flag.ErrHelp)
	assert.ErrorIs(t, parseArgs([]string{"--help"}), flag.ErrHelp)
	assert.Error(t, parseArgs([]string{"-x"}))
	assert.Error(t, parseArgs([]string{"extra"}))
}
