// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedesign/pkg/api"
)

const testTemplate = "GGCCCCCCACGATCAGCAGTTCGGCTTGTGAGGTCTTCGCCGGGTGGTCTCCCGCATTTATACCTTGCTGGCGCCTCAAGGCGCCACCATATGAACGATGGATGAAGGCTTCCGATCCGTCGTCGCGTCGTAGTTAAAAGCTTTGAGTCCAAGCCGGTGAGCAGTTTAGGCAGCCACCATGAGGCACCTCTAAACGTGCGGAGAACAAGAGTCGAAAGTTTTGCCTGAAGGGCCGTCTTGCTTCTTCAATCCAACGATACTAACGCATGCTAACGATGCATCAAGCTGCGCGAGCCCAAC"

func run(t *testing.T, stdin string, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_TextOutput(t *testing.T) {
	code, out, errOut := run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200")
	require.Equal(t, ExitOK, code, "stderr: %s", errOut)
	assert.Contains(t, out, "target region 100..200, 10 pair(s)")
	assert.Contains(t, out, "TACCTTGCTGGCGCCTCAAG")
	assert.Contains(t, out, "GCCTCATGGTGGCTGCCTAA")
}

func TestRun_JSONOutput(t *testing.T) {
	code, out, errOut := run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--output", "json", "--multiplex")
	require.Equal(t, ExitOK, code, "stderr: %s", errOut)

	var res api.DesignResultV1
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Pairs, 10)
	assert.Equal(t, "TACCTTGCTGGCGCCTCAAG", res.Pairs[0].Forward.Sequence)
	assert.InDelta(t, 60.36, res.Pairs[0].Forward.Tm, 0.01)
	assert.InDelta(t, 1.513, res.Pairs[0].CompatibilityScore, 0.01)
	require.NotNil(t, res.Multiplex)
	assert.InDelta(t, 0.836, res.Multiplex.OverallScore, 0.01)
	assert.Equal(t, 100, res.TargetStart)
	assert.Equal(t, 200, res.TargetEnd)
}

func TestRun_MultiplexOmittedByDefault(t *testing.T) {
	code, out, _ := run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--output", "json")
	require.Equal(t, ExitOK, code)
	var res api.DesignResultV1
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Nil(t, res.Multiplex)
}

func TestRun_TSVOutput(t *testing.T) {
	code, out, _ := run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--output", "tsv")
	require.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 21, "header plus two rows per pair")
	assert.True(t, strings.HasPrefix(lines[0], "pair_id\t"))

	code, out, _ = run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--output", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.NotContains(t, out, "pair_id\t")
}

func TestRun_StdinFASTA(t *testing.T) {
	stdin := ">template test record\n" + testTemplate[:150] + "\n" + testTemplate[150:] + "\n"
	code, out, errOut := run(t, stdin,
		"--sequence", "-", "--target-start", "100", "--target-end", "200")
	require.Equal(t, ExitOK, code, "stderr: %s", errOut)
	assert.Contains(t, out, "10 pair(s)")
}

func TestRun_NoPairs(t *testing.T) {
	// Template too short for any amplicon to reach the size floor.
	code, out, _ := run(t, "",
		"--sequence", testTemplate[:50], "--target-start", "10", "--target-end", "40")
	assert.Equal(t, ExitNoPairs, code)
	assert.Contains(t, out, "no primer pairs found")
}

func TestRun_UsageErrors(t *testing.T) {
	code, _, errOut := run(t, "", "--target-start", "0", "--target-end", "10")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "--sequence")

	code, _, errOut = run(t, "",
		"--sequence", testTemplate, "--target-start", "250", "--target-end", "350")
	assert.Equal(t, ExitUsage, code)
	assert.NotEmpty(t, errOut)
}

func TestRun_Version(t *testing.T) {
	code, out, _ := run(t, "", "--version")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "primedesign version")
}

func TestRun_BadConcentrationFallsBack(t *testing.T) {
	code, _, errOut := run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--na", "bogus")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "bad --na")

	code, _, errOut = run(t, "",
		"--sequence", testTemplate, "--target-start", "100", "--target-end", "200",
		"--na", "bogus", "--quiet")
	require.Equal(t, ExitOK, code)
	assert.Empty(t, errOut)
}
