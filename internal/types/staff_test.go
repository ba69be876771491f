package types

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStaffInitials(t *testing.T) {
	cases := []struct {
		name  string
		staff Staff
		want  string
	}{
		{"both names", Staff{FirstName: "karl", LastName: "ritter"}, "KR"},
		{"first only", Staff{FirstName: "Karl"}, "K"},
		{"multi-byte letters", Staff{FirstName: "øyvind", LastName: "çelik"}, "ØÇ"},
		{"empty", Staff{}, ""},
	}
	for _, tc := range cases {
		got := tc.staff.Initials()
		if got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("%s: initials are not valid UTF-8: %q", tc.name, got)
		}
	}
}

func TestStaffViewOmitsPasswordHash(t *testing.T) {
	member := Staff{FirstName: "Eva", LastName: "Stein", PasswordHash: "bcrypt-hash"}
	raw, err := json.Marshal(member.View())
	if err != nil {
		t.Fatalf("marshal view: %v", err)
	}
	if strings.Contains(string(raw), "bcrypt-hash") {
		t.Fatalf("view leaks the password hash: %s", raw)
	}
}
