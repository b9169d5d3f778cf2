package ui

import (
	"bytes"
	"testing"
)

func TestProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf)

	r.Begin(2)
	r.Step("generated-service/pom.xml")
	r.Step("generated-service/src/main/resources/application.properties")
	r.Finish()

	if buf.Len() == 0 {
		t.Error("expected progress output")
	}
	if r.bar != nil {
		t.Error("Finish did not release the bar")
	}
}

func TestProgressReporterWithoutBegin(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf)

	r.Step("pom.xml")
	r.Finish()

	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
