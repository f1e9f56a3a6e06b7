package pkg

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "goinstr"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file and must not be empty.
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected Version to be non-empty")
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name != "" && a.Email != ""
	}) {
		t.Error("Expected Author to contain a complete entry")
	}
}

func TestMakeError_Nil(t *testing.T) {
	if e := MakeError(); e != nil {
		t.Errorf("Expected nil Error, got %v", e)
	}
}

func TestError_WrapAndIs(t *testing.T) {
	err := ErrParseLine.Wrapf("line %d: %q", 3, "bogus")

	if !errors.Is(err, ErrParseLine) {
		t.Error("wrapped error does not match its sentinel")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("wrapped error missing context: %q", err.Error())
	}
}

func TestError_ChainOrder(t *testing.T) {
	inner := errors.New("inner")
	err := MakeError(inner).Wrapf("outer")

	msg := err.Error()
	if !strings.HasPrefix(msg, "inner") {
		t.Errorf("chain should start with innermost error: %q", msg)
	}
	if !strings.HasSuffix(msg, "outer") {
		t.Errorf("chain should end with outermost error: %q", msg)
	}
}
