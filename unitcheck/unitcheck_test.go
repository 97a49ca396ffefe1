package unitcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/unyt-go/unyt/unitcheck"
)

func TestConsistentCodeIsClean(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), unitcheck.Analyzer, "a")
}

func TestInconsistentCodeIsRejected(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), unitcheck.Analyzer, "b")
}
