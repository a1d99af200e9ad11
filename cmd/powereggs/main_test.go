package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_WorkedExample(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("3\n3 1\n100 2\n1 1\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n14\n1\n", stdout.String())
	assert.Contains(t, stderr.String(), "batch finished")
}

func TestRun_FlagsReachTheRunner(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-strategy", "closed", "-max-floors", "2000000007", "-max-eggs", "32", "-memo", "ristretto", "-debug"}
	code := run(args, strings.NewReader("2\n2000000007 32\n2000000007 1\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "31\nImpossible\n", stdout.String())
	assert.Contains(t, stderr.String(), "case answered")
}

func TestRun_CaseErrorsExitOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("2\n101 2\n3 x\n"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Out of Range\nInvalid Input\n", stdout.String())
	assert.Contains(t, stderr.String(), "batch had errors")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-strategy", "guess"}, strings.NewReader("1\n1 1\n"), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-max-floors", "2000000007", "-max-eggs", "32"}, strings.NewReader("1\n2000000007 32\n"), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-ceiling", "-1"}, strings.NewReader("1\n1 1\n"), &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
