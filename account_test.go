package homologsampler

import (
	"testing"
)

func TestParseHostAccount(t *testing.T) {
	acc, err := ParseHostAccount("myhost.com jill jills_pass")
	if err != nil {
		t.Fatal(err)
	}
	if acc.Host != "myhost.com" || acc.User != "jill" || acc.Password != "jills_pass" {
		t.Errorf("got %+v", acc)
	}
	if acc.Port != 3306 {
		t.Errorf("default port = %d, want 3306", acc.Port)
	}

	acc, err = ParseHostAccount("myhost.com jill jills_pass 3307")
	if err != nil {
		t.Fatal(err)
	}
	if acc.Port != 3307 {
		t.Errorf("port = %d, want 3307", acc.Port)
	}

	for _, bad := range []string{"", "host", "host user", "host user pass oops", "a b c d e"} {
		if _, err := ParseHostAccount(bad); err == nil {
			t.Errorf("ParseHostAccount(%q) expected error", bad)
		}
	}
}

func TestDSN(t *testing.T) {
	acc := &HostAccount{Host: "myhost.com", User: "jill", Password: "pw", Port: 3306}
	want := "jill:pw@tcp(myhost.com:3306)/homo_sapiens_core_81_38"
	if got := acc.DSN("homo_sapiens_core_81_38"); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
	if got := acc.String(); got != "jill@myhost.com:3306" {
		t.Errorf("String = %q leaks or malforms", got)
	}
}
