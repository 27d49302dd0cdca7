package util

import (
	"strings"
	"testing"
)

func TestAnonAlias(t *testing.T) {
	a := AnonAlias("user-123")
	if !strings.HasPrefix(a, "Citizen-") || len(a) != len("Citizen-")+6 {
		t.Errorf("unexpected alias format %q", a)
	}
	if b := AnonAlias("user-123"); b != a {
		t.Errorf("alias not stable: %q vs %q", a, b)
	}
	if AnonAlias("user-124") == a {
		t.Errorf("different users should not share an alias")
	}
	if AnonAlias("") != "Citizen" {
		t.Errorf("empty id should fall back to plain Citizen")
	}
}
